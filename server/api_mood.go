package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mooddomain "github.com/lunapup/adoption-api/internal/domains/mood/domain"
	moodports "github.com/lunapup/adoption-api/internal/domains/mood/ports"
)

// MoodAPI wires HTTP transport with the mood classifier.
type MoodAPI struct {
	service moodports.Service
}

// NewMoodAPI creates a MoodAPI backed by the provided service.
func NewMoodAPI(service moodports.Service) MoodAPI {
	return MoodAPI{service: service}
}

type moodPayload struct {
	Text string `json:"text"`
}

type moodResponse struct {
	Mood mooddomain.Label `json:"mood"`
}

// Post /mood
// Classifies free text into a cosmetic mood label. Never fails visibly:
// an unreadable body simply classifies as normal.
func (api *MoodAPI) Mood(c *gin.Context) {
	var payload moodPayload
	_ = c.ShouldBindJSON(&payload)

	label := api.service.Classify(c.Request.Context(), payload.Text)
	c.JSON(http.StatusOK, moodResponse{Mood: label})
}
