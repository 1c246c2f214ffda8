// Package ports declares the precheck bounded context interfaces.
package ports

import (
	"context"

	"github.com/lunapup/adoption-api/internal/domains/precheck/domain"
)

// Service exposes the precheck gate use case to adapters.
type Service interface {
	Evaluate(ctx context.Context, answers domain.Answers, clientKey string) (*domain.Evaluation, error)
}
