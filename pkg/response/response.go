// Package response builds the uniform JSON envelope used by every endpoint.
//
// Exemptions from the envelope, kept for wire compatibility: the login
// endpoint returns {"token": ...}, the credit-score endpoint returns
// {"creditScore": ...}, and the root health check returns {"status": ...}.
package response

// Envelope is the standard response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope. errs carries optional field-level detail
// such as validation messages.
func Fail(message string, errs any) Envelope {
	return Envelope{Success: false, Message: message, Errors: errs}
}
