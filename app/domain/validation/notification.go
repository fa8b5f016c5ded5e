package validation

import "fmt"

// Notification is the default Handler. It never short-circuits: every rule in
// a validation pass runs and every failure is collected, so one pass reports
// all violations at once.
type Notification struct {
	errs []Error
}

func NewNotification() *Notification {
	return &Notification{errs: []Error{}}
}

func (n *Notification) Append(anError Error) Handler {
	n.errs = append(n.errs, anError)
	return n
}

func (n *Notification) AppendHandler(other Handler) Handler {
	if other != nil {
		n.errs = append(n.errs, other.Errors()...)
	}
	return n
}

// Validate runs a single rule. A failed rule, or one that panics, is converted
// into an appended Error so the remaining rules of the pass still execute.
func (n *Notification) Validate(rule Validation) (h Handler) {
	h = n
	defer func() {
		if r := recover(); r != nil {
			n.errs = append(n.errs, NewError(fmt.Sprint(r)))
		}
	}()

	if err := rule(); err != nil {
		n.errs = append(n.errs, NewError(err.Error()))
	}
	return h
}

// Errors returns the accumulated errors in insertion order.
func (n *Notification) Errors() []Error {
	return n.errs
}

func (n *Notification) HasErrors() bool {
	return len(n.errs) > 0
}

func (n *Notification) FirstError() (Error, bool) {
	if len(n.errs) == 0 {
		return Error{}, false
	}
	return n.errs[0], true
}
