package uri

import "errors"

// Kind classifies parse failures. Either way the parse fails as a whole.
type Kind uint8

const (
	// Malformed means the input doesn't match the grammar at the current stage.
	Malformed Kind = iota + 1
	// OutOfRange means the input matches the grammar, but a numeric value overflows.
	OutOfRange
)

type Error struct {
	Message string
	Kind    Kind
}

func NewError(kind Kind, message string) error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrEmpty          = NewError(Malformed, "empty URI")
	ErrBadScheme      = NewError(Malformed, "malformed scheme")
	ErrBadHost        = NewError(Malformed, "malformed IPv6 host literal")
	ErrBadEscape      = NewError(Malformed, "malformed percent-encoded sequence")
	ErrTrailingData   = NewError(Malformed, "unexpected data after the fragment")
	ErrPortOutOfRange = NewError(OutOfRange, "port number is out of range")
)

// IsOutOfRange tells whether the error reports a numeric overflow.
func IsOutOfRange(err error) bool {
	var uriErr Error
	return errors.As(err, &uriErr) && uriErr.Kind == OutOfRange
}
