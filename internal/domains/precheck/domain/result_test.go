package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResult_AcceptsConformingReply(t *testing.T) {
	raw := `{"pass":true,"score":82,"summary":"ok","feedback":["a","b","c"],"flags":[]}`
	r, err := ParseResult(raw)
	require.NoError(t, err)
	require.True(t, r.Pass)
	require.Equal(t, 82, r.Score)
	require.Equal(t, "ok", r.Summary)
	require.Equal(t, []string{"a", "b", "c"}, r.Feedback)
	require.Empty(t, r.Flags)
}

func TestParseResult_RejectsNonConformingReplies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "approved!"},
		{"empty", ""},
		{"missing pass", `{"score":10,"summary":"s","feedback":["a","b","c"],"flags":[]}`},
		{"missing flags", `{"pass":false,"score":10,"summary":"s","feedback":["a","b","c"]}`},
		{"extra field", `{"pass":true,"score":10,"summary":"s","feedback":["a","b","c"],"flags":[],"note":"x"}`},
		{"score above range", `{"pass":true,"score":101,"summary":"s","feedback":["a","b","c"],"flags":[]}`},
		{"score below range", `{"pass":true,"score":-1,"summary":"s","feedback":["a","b","c"],"flags":[]}`},
		{"too little feedback", `{"pass":true,"score":50,"summary":"s","feedback":["a","b"],"flags":[]}`},
		{"too much feedback", `{"pass":true,"score":50,"summary":"s","feedback":["a","b","c","d","e","f","g"],"flags":[]}`},
		{"too many flags", `{"pass":false,"score":5,"summary":"s","feedback":["a","b","c"],"flags":["1","2","3","4","5"]}`},
		{"trailing data", `{"pass":true,"score":50,"summary":"s","feedback":["a","b","c"],"flags":[]}{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult(tt.raw)
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestParseResult_FeedbackAndFlagBoundsAreInclusive(t *testing.T) {
	r, err := ParseResult(`{"pass":false,"score":0,"summary":"s","feedback":["a","b","c","d","e","f"],"flags":["w","x","y","z"]}`)
	require.NoError(t, err)
	require.Len(t, r.Feedback, 6)
	require.Len(t, r.Flags, 4)
}

func TestAnswers_Missing(t *testing.T) {
	full := Answers{
		HoursAlone:   "4-6",
		BiteHandling: "redirijo a un juguete",
		Routine:      "dos paseos y entrenamiento",
		HasPets:      "no",
		SleepPlace:   "adentro, en su cama",
		BackupCare:   "mi hermana",
	}
	require.Empty(t, full.Missing())

	partial := full
	partial.SleepPlace = "   "
	partial.BackupCare = ""
	require.Equal(t, []string{"sleepPlace", "backupCare"}, partial.Missing())
}

func TestAnswers_SubmitBlockersEnforcesMinLength(t *testing.T) {
	a := Answers{
		HoursAlone:   "0-2",
		BiteHandling: "corto",
		Routine:      "paseos diarios con olfateo",
		HasPets:      "si",
		SleepPlace:   "adentro",
		BackupCare:   "vecina",
	}
	blockers := a.SubmitBlockers()
	require.Len(t, blockers, 1)
	require.Contains(t, blockers[0], "mordisqueo")
}
