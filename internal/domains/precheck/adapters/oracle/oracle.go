// Package oracle adapts the platform completion client to the precheck
// scoring port.
package oracle

import (
	"context"

	platformoracle "github.com/lunapup/adoption-api/internal/platform/oracle"

	"github.com/lunapup/adoption-api/internal/domains/precheck/ports"
)

// Adapter issues structured scoring calls through the shared client.
type Adapter struct {
	client *platformoracle.Client
}

func New(client *platformoracle.Client) *Adapter {
	return &Adapter{client: client}
}

// Evaluate requests a schema-constrained verdict. Scoring uses medium
// reasoning effort; the reply must be the bare JSON object.
func (a *Adapter) Evaluate(ctx context.Context, system, user string, schema ports.Schema) (string, error) {
	return a.client.Complete(ctx, platformoracle.Request{
		System:          system,
		User:            user,
		ReasoningEffort: "medium",
		Format: &platformoracle.TextFormat{
			Name:   schema.Name,
			Strict: schema.Strict,
			Schema: schema.Definition,
		},
	})
}

var _ ports.Oracle = (*Adapter)(nil)
