// Package application implements the cosmetic mood classification.
package application

import (
	"context"
	"strings"

	"github.com/lunapup/adoption-api/internal/domains/mood/domain"
	"github.com/lunapup/adoption-api/internal/domains/mood/ports"
)

// SystemPrompt restricts the oracle to the four allowed labels.
const SystemPrompt = `Eres un clasificador emocional para un formulario de adopción de una perrita.

Debes clasificar el texto en SOLO uno de estos labels:
normal, alegre, dudosa, molesta.

Reglas:

- Tiende a clasificar como "alegre" si detectas intención positiva,
  cariño, responsabilidad, disposición o buena actitud.
  Aunque no sea extremadamente emocional.

- Usa "dudosa" si detectas inseguridad, indecisión,
  frases como "no sé", "tal vez", "creo que", "no estoy seguro".

- Usa "molesta" SOLO si hay enojo claro, frustración fuerte,
  agresividad, desinterés evidente o actitud negativa marcada.

- Si el texto es neutro sin emoción clara, clasifícalo como "normal".

Responde SOLO con el label exacto.
Sin comillas.
Sin explicación.`

// Service classifies visitor text, never surfacing a failure.
type Service struct {
	oracle ports.Oracle
}

func NewService(oracle ports.Oracle) *Service {
	return &Service{oracle: oracle}
}

// Classify maps text to a mood label. Short input skips the oracle;
// unrecognized or failed replies fall back to normal.
func (s *Service) Classify(ctx context.Context, text string) domain.Label {
	if len(strings.TrimSpace(text)) < domain.MinClassifiableLen {
		return domain.LabelNormal
	}
	reply, err := s.oracle.Classify(ctx, SystemPrompt, text)
	if err != nil {
		return domain.LabelNormal
	}
	label, _ := domain.ParseLabel(reply)
	return label
}

var _ ports.Service = (*Service)(nil)
