package adoptionserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	contactapp "github.com/lunapup/adoption-api/internal/domains/contact/application"
	apierrors "github.com/lunapup/adoption-api/internal/shared/errors"
)

func newContactRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouterWithGinEngine(gin.New(), ApiHandleFunctions{
		ContactAPI: NewContactAPI(contactapp.NewService("+51964273326")),
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact/link", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContactLink_ComposesMessageAndDeepLink(t *testing.T) {
	body := `{
		"name":"Ana","whatsapp":"+51 999 888 777","district":"Miraflores",
		"homeType":"depa","hasPets":"no","message":"Tenemos tiempo","consent":true,
		"prefill":{"hoursAlone":"2-4","biteHandling":"redirijo a un juguete","routine":"dos paseos"}
	}`
	w := postContact(newContactRouter(), body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["message"], "Nombre: Ana")
	require.Contains(t, resp["message"], "Horas sola al día: 2-4")
	require.True(t, strings.HasPrefix(resp["link"], "https://wa.me/51964273326?text="))
}

func TestContactLink_IncompleteFormIsProblemDetail(t *testing.T) {
	w := postContact(newContactRouter(), `{"name":"A","consent":true}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	var problem map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	require.Equal(t, apierrors.TypeValidation, problem["type"])
	missing := problem["extensions"].(map[string]any)["missing"].([]any)
	require.Contains(t, missing, "nombre")
	require.Contains(t, missing, "WhatsApp")
}

func TestContactLink_ConsentIsRequired(t *testing.T) {
	body := `{
		"name":"Ana","whatsapp":"+51999888777","district":"Lima",
		"homeType":"casa","hasPets":"si","consent":false
	}`
	w := postContact(newContactRouter(), body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "consentimiento")
}
