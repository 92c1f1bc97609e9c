package aiclass

import "fmt"

// ResponseParseError means the model reply was empty or not valid JSON.
type ResponseParseError struct {
	Content string
	Err     error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parse AI response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// ValidationError means the input or the parsed reply broke a structural rule.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid AI response: %s: %v", e.Reason, e.Err)
	}
	return "invalid AI response: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
