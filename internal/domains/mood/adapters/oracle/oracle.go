// Package oracle adapts the platform completion client to the mood
// classification port.
package oracle

import (
	"context"

	platformoracle "github.com/lunapup/adoption-api/internal/platform/oracle"

	"github.com/lunapup/adoption-api/internal/domains/mood/ports"
)

// Adapter issues short, low-temperature classification calls.
type Adapter struct {
	client *platformoracle.Client
}

func New(client *platformoracle.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Classify(ctx context.Context, system, user string) (string, error) {
	temperature := 0.2
	return a.client.Complete(ctx, platformoracle.Request{
		System:          system,
		User:            user,
		Temperature:     &temperature,
		MaxOutputTokens: 20,
	})
}

var _ ports.Oracle = (*Adapter)(nil)
