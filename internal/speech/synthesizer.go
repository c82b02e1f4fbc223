package speech

import "context"

// Synthesizer renders text to a WAV file on local disk.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outPath string) error
}
