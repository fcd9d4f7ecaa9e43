package utils

import "context"

// GenerationClientInterface is the outbound edge to an LLM provider. It
// returns the raw model text; JSON extraction and shape repair happen in the
// itinerary service, never here.
type GenerationClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
}
