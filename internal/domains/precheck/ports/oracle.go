package ports

import "context"

// Schema describes the structured-output contract sent with an
// evaluation request.
type Schema struct {
	Name       string
	Strict     bool
	Definition map[string]any
}

// Oracle scores a questionnaire. Implementations return the raw reply
// text; the application layer validates it against the result schema.
type Oracle interface {
	Evaluate(ctx context.Context, system, user string, schema Schema) (string, error)
}
