package port

import "context"

// CompletionMode tells the LLM collaborator what reply shape the prompt expects.
type CompletionMode string

const (
	// ModeLabel expects a single label token in the reply.
	ModeLabel CompletionMode = "label"
	// ModeJSON expects a JSON object, possibly wrapped in code fences.
	ModeJSON CompletionMode = "json"
)

// LLMClient is the language-model collaborator boundary. Transport concerns
// (connection pooling, provider retries) live behind this interface.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, mode CompletionMode) (string, error)
}
