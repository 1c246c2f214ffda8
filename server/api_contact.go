package adoptionserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	contactapp "github.com/lunapup/adoption-api/internal/domains/contact/application"
	contactdomain "github.com/lunapup/adoption-api/internal/domains/contact/domain"
	apierrors "github.com/lunapup/adoption-api/internal/shared/errors"
)

// ContactAPI wires HTTP transport with the contact message composer.
type ContactAPI struct {
	service *contactapp.Service
}

// NewContactAPI creates a ContactAPI backed by the provided composer.
func NewContactAPI(service *contactapp.Service) ContactAPI {
	return ContactAPI{service: service}
}

type contactPayload struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	District string `json:"district"`
	HomeType string `json:"homeType"`
	HasPets  string `json:"hasPets"`
	Message  string `json:"message"`
	Consent  bool   `json:"consent"`
	Prefill  struct {
		HoursAlone   string `json:"hoursAlone"`
		BiteHandling string `json:"biteHandling"`
		Routine      string `json:"routine"`
	} `json:"prefill"`
}

type contactResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Post /contact/link
// Composes the pre-filled adoption message and its wa.me deep link.
func (api *ContactAPI) ContactLink(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	composition, err := api.service.Compose(contactdomain.Request{
		Name:     payload.Name,
		WhatsApp: payload.WhatsApp,
		District: payload.District,
		HomeType: payload.HomeType,
		HasPets:  payload.HasPets,
		Message:  payload.Message,
		Consent:  payload.Consent,
		Prefill: contactdomain.Prefill{
			HoursAlone:   payload.Prefill.HoursAlone,
			BiteHandling: payload.Prefill.BiteHandling,
			Routine:      payload.Prefill.Routine,
		},
	})
	if err != nil {
		var vErr *contactdomain.ValidationError
		switch {
		case errors.As(err, &vErr):
			apierrors.ValidationFailed(c, vErr.Missing)
		case errors.Is(err, contactdomain.ErrConsentRequired):
			apierrors.BadRequest(c, "falta aceptar el consentimiento")
		default:
			apierrors.RespondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, contactResponse{
		Message: composition.Message,
		Link:    composition.Link,
	})
}
