package llm

import "errors"

var (
	// ErrOllamaUnavailable means no Ollama server answered at the endpoint.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout means the call ran past the task's deadline.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the model's text did not parse into the
	// expected structure.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted means every attempt failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
