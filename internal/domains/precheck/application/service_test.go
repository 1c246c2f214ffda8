package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ratelimitadapter "github.com/lunapup/adoption-api/internal/domains/precheck/adapters/ratelimit"
	"github.com/lunapup/adoption-api/internal/domains/precheck/domain"
	"github.com/lunapup/adoption-api/internal/domains/precheck/ports"
	platformratelimit "github.com/lunapup/adoption-api/internal/platform/ratelimit"
)

type stubOracle struct {
	reply string
	err   error
	calls int

	lastSystem string
	lastUser   string
	lastSchema ports.Schema
}

func (o *stubOracle) Evaluate(_ context.Context, system, user string, schema ports.Schema) (string, error) {
	o.calls++
	o.lastSystem = system
	o.lastUser = user
	o.lastSchema = schema
	return o.reply, o.err
}

type stubLimiter struct {
	decision ports.Decision
	lastKey  string
}

func (l *stubLimiter) Allow(key string) ports.Decision {
	l.lastKey = key
	return l.decision
}

func admitting(remaining int) *stubLimiter {
	return &stubLimiter{decision: ports.Decision{Allowed: true, Remaining: remaining}}
}

func completeAnswers() domain.Answers {
	return domain.Answers{
		HoursAlone:   "2-4",
		BiteHandling: "redirijo a un juguete y refuerzo",
		Routine:      "dos paseos con olfateo y entrenamiento corto",
		HasPets:      "no",
		SleepPlace:   "adentro, en su cama",
		BackupCare:   "mi hermana Carla",
	}
}

func TestEvaluate_PassesThroughOracleResultWithQuota(t *testing.T) {
	oracle := &stubOracle{reply: `{"pass":true,"score":82,"summary":"ok","feedback":["a","b","c"],"flags":[]}`}
	limiter := admitting(3)
	svc := NewService(oracle, limiter)

	eval, err := svc.Evaluate(context.Background(), completeAnswers(), "203.0.113.7")
	require.NoError(t, err)
	require.True(t, eval.Pass)
	require.Equal(t, 82, eval.Score)
	require.Equal(t, "ok", eval.Summary)
	require.Equal(t, []string{"a", "b", "c"}, eval.Feedback)
	require.Empty(t, eval.Flags)
	require.Equal(t, 3, eval.Remaining)
	require.Zero(t, eval.RetryAfter)
	require.Equal(t, "203.0.113.7", limiter.lastKey)
}

func TestEvaluate_IncompleteAnswersSkipOracle(t *testing.T) {
	oracle := &stubOracle{}
	svc := NewService(oracle, admitting(4))

	answers := completeAnswers()
	answers.BackupCare = "  "
	_, err := svc.Evaluate(context.Background(), answers, "k")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"backupCare"}, vErr.Missing)
	require.Zero(t, oracle.calls)
}

func TestEvaluate_RateLimitedSkipsOracle(t *testing.T) {
	oracle := &stubOracle{}
	limiter := &stubLimiter{decision: ports.Decision{Allowed: false, RetryAfter: 12 * time.Second}}
	svc := NewService(oracle, limiter)

	_, err := svc.Evaluate(context.Background(), completeAnswers(), "k")

	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	require.Equal(t, 12*time.Second, rlErr.RetryAfter)
	require.Zero(t, oracle.calls)
}

func TestEvaluate_OracleFailurePropagates(t *testing.T) {
	oracle := &stubOracle{err: errors.New("connection reset")}
	svc := NewService(oracle, admitting(2))

	_, err := svc.Evaluate(context.Background(), completeAnswers(), "k")
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.False(t, errors.As(err, &schemaErr))
}

func TestEvaluate_MalformedReplyIsSchemaError(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"plain text", "she seems fine"},
		{"missing feedback", `{"pass":true,"score":70,"summary":"s","flags":[]}`},
		{"feedback too short", `{"pass":true,"score":70,"summary":"s","feedback":["a"],"flags":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubOracle{reply: tt.reply}, admitting(1))
			_, err := svc.Evaluate(context.Background(), completeAnswers(), "k")
			var schemaErr *domain.SchemaError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestEvaluate_PromptEmbedsAnswersVerbatim(t *testing.T) {
	oracle := &stubOracle{reply: `{"pass":false,"score":40,"summary":"s","feedback":["a","b","c"],"flags":["sin tiempo"]}`}
	svc := NewService(oracle, admitting(0))

	answers := completeAnswers()
	_, err := svc.Evaluate(context.Background(), answers, "k")
	require.NoError(t, err)

	require.Equal(t, SystemPrompt, oracle.lastSystem)
	for _, v := range []string{
		answers.HoursAlone, answers.BiteHandling, answers.Routine,
		answers.HasPets, answers.SleepPlace, answers.BackupCare,
	} {
		require.True(t, strings.Contains(oracle.lastUser, v), "user prompt should contain %q", v)
	}
	require.Equal(t, SchemaName, oracle.lastSchema.Name)
	require.True(t, oracle.lastSchema.Strict)
	require.Equal(t, false, oracle.lastSchema.Definition["additionalProperties"])
}

func TestEvaluate_FixedWindowScenario(t *testing.T) {
	// 4 attempts inside a 30s window pass through to the oracle, the 5th
	// is rejected with the remaining window time.
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	window := ratelimitadapter.New(platformratelimit.NewFixedWindow(
		30*time.Second, 4,
		platformratelimit.WithClock(func() time.Time { return now }),
	))
	oracle := &stubOracle{reply: `{"pass":true,"score":90,"summary":"s","feedback":["a","b","c"],"flags":[]}`}
	svc := NewService(oracle, window)

	for i := 0; i < 4; i++ {
		_, err := svc.Evaluate(context.Background(), completeAnswers(), "same")
		require.NoError(t, err)
		now = now.Add(2 * time.Second)
	}
	require.Equal(t, 4, oracle.calls)

	_, err := svc.Evaluate(context.Background(), completeAnswers(), "same")
	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	require.Equal(t, 22*time.Second, rlErr.RetryAfter)
	require.Equal(t, 4, oracle.calls)
}
