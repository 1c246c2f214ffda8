// Package application implements the precheck gate use case.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/lunapup/adoption-api/internal/domains/precheck/domain"
	"github.com/lunapup/adoption-api/internal/domains/precheck/ports"
)

// RateLimitError reports a rejected evaluation attempt along with the
// remaining window time.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// Service orchestrates an evaluation: input validation, rate limiting,
// the oracle call, and reply validation.
type Service struct {
	oracle  ports.Oracle
	limiter ports.RateLimiter
}

func NewService(oracle ports.Oracle, limiter ports.RateLimiter) *Service {
	return &Service{oracle: oracle, limiter: limiter}
}

// Evaluate runs the gate for one questionnaire. Incomplete answers and
// rate-limit rejections never reach the oracle.
func (s *Service) Evaluate(ctx context.Context, answers domain.Answers, clientKey string) (*domain.Evaluation, error) {
	answers = answers.Normalized()
	if missing := answers.Missing(); len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	decision := s.limiter.Allow(clientKey)
	if !decision.Allowed {
		return nil, &RateLimitError{RetryAfter: decision.RetryAfter}
	}

	reply, err := s.oracle.Evaluate(ctx, SystemPrompt, BuildUserPrompt(answers), ResultSchema())
	if err != nil {
		return nil, fmt.Errorf("oracle evaluation: %w", err)
	}

	result, err := domain.ParseResult(reply)
	if err != nil {
		return nil, err
	}
	return &domain.Evaluation{
		Result:    *result,
		Remaining: decision.Remaining,
	}, nil
}

var _ ports.Service = (*Service)(nil)
