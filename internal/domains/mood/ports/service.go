// Package ports declares the mood bounded context interfaces.
package ports

import (
	"context"

	"github.com/lunapup/adoption-api/internal/domains/mood/domain"
)

// Service classifies free text into a mood label. It always returns a
// label; failures degrade to domain.LabelNormal.
type Service interface {
	Classify(ctx context.Context, text string) domain.Label
}

// Oracle performs the single-token classification call.
type Oracle interface {
	Classify(ctx context.Context, system, user string) (string, error)
}
