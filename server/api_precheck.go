package adoptionserver

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	precheckapp "github.com/lunapup/adoption-api/internal/domains/precheck/application"
	precheckdomain "github.com/lunapup/adoption-api/internal/domains/precheck/domain"
	precheckports "github.com/lunapup/adoption-api/internal/domains/precheck/ports"
	"github.com/lunapup/adoption-api/internal/platform/oracle"
	"github.com/lunapup/adoption-api/internal/platform/ratelimit"
)

// PrecheckAPI wires HTTP transport with the precheck bounded context.
type PrecheckAPI struct {
	service precheckports.Service
}

// NewPrecheckAPI creates a PrecheckAPI backed by the provided service.
func NewPrecheckAPI(service precheckports.Service) PrecheckAPI {
	return PrecheckAPI{service: service}
}

type precheckAnswersPayload struct {
	HoursAlone   string `json:"hoursAlone"`
	BiteHandling string `json:"biteHandling"`
	Routine      string `json:"routine"`
	HasPets      string `json:"hasPets"`
	SleepPlace   string `json:"sleepPlace"`
	BackupCare   string `json:"backupCare"`
}

type precheckPayload struct {
	Answers precheckAnswersPayload `json:"answers"`
}

// precheckResponse is the declared result shape; every outcome of this
// endpoint, including failures, serializes to it.
type precheckResponse struct {
	Pass         bool     `json:"pass"`
	Score        int      `json:"score"`
	Summary      string   `json:"summary"`
	Feedback     []string `json:"feedback"`
	Flags        []string `json:"flags"`
	Remaining    *int     `json:"remaining,omitempty"`
	RetryAfterMs *int64   `json:"retryAfterMs,omitempty"`
}

// Post /precheck
// Evaluates the questionnaire and decides whether the contact form unlocks.
func (api *PrecheckAPI) Precheck(c *gin.Context) {
	var payload precheckPayload
	// A malformed body is treated like an empty questionnaire.
	_ = c.ShouldBindJSON(&payload)

	answers := precheckdomain.Answers{
		HoursAlone:   payload.Answers.HoursAlone,
		BiteHandling: payload.Answers.BiteHandling,
		Routine:      payload.Answers.Routine,
		HasPets:      payload.Answers.HasPets,
		SleepPlace:   payload.Answers.SleepPlace,
		BackupCare:   payload.Answers.BackupCare,
	}
	clientKey := ratelimit.ClientKey(c.Request.Header)

	eval, err := api.service.Evaluate(c.Request.Context(), answers, clientKey)
	if err != nil {
		respondPrecheckError(c, err)
		return
	}

	remaining := eval.Remaining
	retryAfterMs := eval.RetryAfter.Milliseconds()
	c.JSON(http.StatusOK, precheckResponse{
		Pass:         eval.Pass,
		Score:        eval.Score,
		Summary:      eval.Summary,
		Feedback:     eval.Feedback,
		Flags:        eval.Flags,
		Remaining:    &remaining,
		RetryAfterMs: &retryAfterMs,
	})
}

func respondPrecheckError(c *gin.Context, err error) {
	var vErr *precheckdomain.ValidationError
	var rlErr *precheckapp.RateLimitError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, precheckResponse{
			Summary:  "Completa todas las preguntas para poder evaluar.",
			Feedback: []string{"Falta responder: " + strings.Join(vErr.Missing, ", ") + "."},
			Flags:    []string{},
		})
	case errors.As(err, &rlErr):
		retryAfterMs := rlErr.RetryAfter.Milliseconds()
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(rlErr.RetryAfter)))
		c.JSON(http.StatusTooManyRequests, precheckResponse{
			Summary:      "Demasiados intentos seguidos. Espera un momento y vuelve a intentar.",
			Feedback:     []string{},
			Flags:        []string{},
			RetryAfterMs: &retryAfterMs,
		})
	case errors.Is(err, oracle.ErrNotConfigured):
		// Operator-facing diagnostic; this is a deployment problem, not
		// an end-user one.
		c.JSON(http.StatusInternalServerError, precheckResponse{
			Summary:  "Configuración incompleta: falta OPENAI_API_KEY en el servidor.",
			Feedback: []string{"Contacta a la persona que administra la página."},
			Flags:    []string{},
		})
	default:
		c.JSON(http.StatusInternalServerError, precheckResponse{
			Summary:  "Error evaluando respuestas. Intenta nuevamente.",
			Feedback: []string{"Ocurrió un error inesperado en el servidor."},
			Flags:    []string{},
		})
	}
}

func retryAfterSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
