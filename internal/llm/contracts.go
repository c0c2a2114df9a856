package llm

import "context"

// Completer is the narrow contract for the text-completion oracle: one
// prompt in, one completion out. All prompt construction and response
// validation lives with the callers, which keeps the oracle a swappable,
// stateless dependency and makes deterministic test doubles trivial.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
