package imagegen

import "context"

// Provider generates a raw image for a prompt. Implementations return
// the undecoded image bytes; encoding for the web happens downstream.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
