package llm

import "context"

// Client is the interface to the text-generation backend. One call, one
// prompt pair, one blob of generated text back.
type Client interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// CallError wraps any failure to obtain usable content from the backend:
// transport errors, non-2xx statuses, or a response without content.
type CallError struct {
	Endpoint string
	Err      error
}

func (e *CallError) Error() string {
	return "llm call to " + e.Endpoint + " failed: " + e.Err.Error()
}

func (e *CallError) Unwrap() error {
	return e.Err
}
