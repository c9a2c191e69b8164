package llm

import "fmt"

// TransportError means the backend call did not complete successfully.
type TransportError struct {
	Provider   Provider
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means the backend answered but without the expected
// choices[0].message.content field.
type MalformedResponseError struct {
	Provider Provider
	Reason   string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid response format from %s: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid response format from %s: %s", e.Provider, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// NoGuessExtractedError means the cleaned reply holds no 5-letter word.
type NoGuessExtractedError struct {
	Text string
}

func (e *NoGuessExtractedError) Error() string {
	return fmt.Sprintf("no valid 5-letter word found in response: %q", e.Text)
}
