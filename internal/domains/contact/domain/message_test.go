package domain

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		Name:     "Ana",
		WhatsApp: "+51 999 888 777",
		District: "Miraflores",
		HomeType: "depa",
		HasPets:  "no",
		Message:  "Tenemos patio y tiempo",
		Consent:  true,
		Prefill: Prefill{
			HoursAlone:   "2-4",
			BiteHandling: "redirijo a un juguete",
			Routine:      "dos paseos diarios",
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	r := validRequest()
	r.Name = "A"
	r.WhatsApp = "12345"
	err := r.Validate()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"nombre", "WhatsApp"}, vErr.Missing)

	r = validRequest()
	r.Consent = false
	require.ErrorIs(t, r.Validate(), ErrConsentRequired)
}

func TestCompile_FillsDashesForEmptyOptionalFields(t *testing.T) {
	r := validRequest()
	r.Message = ""
	msg := r.Compile()
	require.Contains(t, msg, "Hola! Quiero adoptar a la perrita")
	require.Contains(t, msg, "Nombre: Ana")
	require.Contains(t, msg, "Mensaje: -")
	require.Contains(t, msg, "Horas sola al día: 2-4")
	require.Contains(t, msg, "Si muerde jugando: redirijo a un juguete")
}

func TestLink_KeepsDigitsAndEscapesMessage(t *testing.T) {
	link := Link("+51964273326", "Hola! ¿sigue disponible?")
	require.True(t, strings.HasPrefix(link, "https://wa.me/51964273326?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "Hola! ¿sigue disponible?", u.Query().Get("text"))
}
