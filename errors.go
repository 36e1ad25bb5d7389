package keyz

import "fmt"

// EncodeError is returned by the fallible conversions (Binary, Text) when the
// value refuses to marshal itself. The built-in parts never fail.
type EncodeError struct {
	Value any
	Err   error
}

func encodeErr(v any, err error) error {
	return &EncodeError{v, err}
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func (e *EncodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("keyz: cannot encode %T", e.Value)
	}
	return fmt.Sprintf("keyz: cannot encode %T: %v", e.Value, e.Err)
}
