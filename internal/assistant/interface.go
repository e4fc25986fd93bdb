package assistant

import "context"

// Gateway turns a prompt into reply text. It never fails: transport problems
// and unusable replies come back as fixed apology strings.
type Gateway interface {
	Complete(ctx context.Context, prompt string) string
	// CompleteJSON behaves like Complete but asks the provider for a JSON object
	// when JSON mode is enabled.
	CompleteJSON(ctx context.Context, prompt string) string
}
