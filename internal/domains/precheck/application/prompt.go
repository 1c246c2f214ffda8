package application

import (
	"fmt"

	"github.com/lunapup/adoption-api/internal/domains/precheck/domain"
	"github.com/lunapup/adoption-api/internal/domains/precheck/ports"
)

// SchemaName identifies the structured-output contract on the wire.
const SchemaName = "adoption_precheck"

// SystemPrompt is the evaluator rubric. The "violencia => pass=false"
// rule is enforced by the oracle's instruction-following; there is no
// local override when the oracle ignores it.
const SystemPrompt = `Eres un evaluador amable para un pre-check de adopción responsable de una perrita joven y enérgica (muerde jugando).
Objetivo: filtrar impulsivos y educar, NO discriminar por estilo de escritura.
Devuelve SOLO JSON siguiendo el schema.

Criterios positivos:
- Habla de entrenamiento positivo, redirección con juguete, refuerzo, paciencia.
- Rutina realista: paseos, juego, entrenamiento, descanso.
- Si está sola muchas horas, menciona soluciones (paseador, guardería, familia, enriquecimiento).
- Si hay otras mascotas, plan de presentación gradual.
- Cuidado de respaldo con nombre concreto (familiar, vecino, paseador).
- Dormiría adentro, con un lugar propio.

Banderas rojas (flags):
- Castigo físico / violencia / "la golpeo" / "le cierro el hocico" / etc.
- "La regalo si molesta", "si muerde la boto", "no tengo tiempo".
- Expectativas irreales: "que no muerda nunca" sin plan.
- Viviría afuera permanentemente y sin supervisión.
- Muchas horas sola sin ningún plan de respaldo.

Regla:
- Si hay violencia/castigo físico => pass=false (bloquea).
- Si es solo "inmaduro" o faltan detalles => pass=false pero con feedback educativo y retry.`

// BuildUserPrompt embeds the six answers verbatim into the evaluation
// request.
func BuildUserPrompt(a domain.Answers) string {
	return fmt.Sprintf(`Respuestas del interesado:
1) Horas sola al día: %s
2) ¿Qué harías si muerde jugando?: %s
3) Rutina/tiempo para paseos y entrenamiento: %s
4) ¿Convive con otras mascotas?: %s
5) ¿Dónde dormiría?: %s
6) ¿Quién la cuidaría si tú no puedes?: %s

Evalúa y devuelve:
- pass: boolean (si puede desbloquear el formulario)
- score: 0..100
- summary: 1 frase
- feedback: 3-6 bullets concretos
- flags: 0-4 strings cortos si hay banderas rojas (ej: "castigo físico", "sin tiempo", "expectativas irreales")`,
		a.HoursAlone, a.BiteHandling, a.Routine, a.HasPets, a.SleepPlace, a.BackupCare)
}

// ResultSchema returns the strict JSON schema the oracle's reply must
// follow: no extra properties, feedback 3-6 items, flags 0-4, score 0-100.
func ResultSchema() ports.Schema {
	return ports.Schema{
		Name:   SchemaName,
		Strict: true,
		Definition: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"pass":    map[string]any{"type": "boolean"},
				"score":   map[string]any{"type": "integer", "minimum": domain.MinScore, "maximum": domain.MaxScore},
				"summary": map[string]any{"type": "string"},
				"feedback": map[string]any{
					"type":     "array",
					"minItems": domain.MinFeedback,
					"maxItems": domain.MaxFeedback,
					"items":    map[string]any{"type": "string"},
				},
				"flags": map[string]any{
					"type":     "array",
					"minItems": 0,
					"maxItems": domain.MaxFlags,
					"items":    map[string]any{"type": "string"},
				},
			},
			"required": []string{"pass", "score", "summary", "feedback", "flags"},
		},
	}
}
