package image

import "context"

// Generator produces a single rendered image for a text prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
