package content

import "context"

// DefaultTemperature is used when a request leaves Temperature at zero
const DefaultTemperature = 0.7

// Generator produces text for a prompt. Implementations wrap a hosted
// model; the package itself never talks to the network.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func(ctx context.Context, prompt string, temperature float64) (string, error)

// Generate calls f
func (f GeneratorFunc) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	return f(ctx, prompt, temperature)
}

// Replay answers every prompt with the same saved reply. It lets a stored
// model response go through the same pipeline as a live one.
type Replay struct {
	Reply string
}

// Generate returns the saved reply unless ctx is already done
func (r Replay) Generate(ctx context.Context, _ string, _ float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.Reply, nil
}
