package validation

// Error is a single validation failure message.
type Error struct {
	Message string
}

func NewError(message string) Error {
	return Error{Message: message}
}

// Validation is one no-argument rule. A non-nil result means the rule failed.
type Validation func() error

// Handler accumulates validation errors. Every method that adds errors returns
// the handler itself so checks can be chained.
type Handler interface {
	Append(anError Error) Handler
	AppendHandler(other Handler) Handler
	Validate(rule Validation) Handler
	Errors() []Error
	HasErrors() bool
	FirstError() (Error, bool)
}
