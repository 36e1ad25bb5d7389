package keyz

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := encodeErr(failingMarshaler{}, inner)

	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %T, wanted *EncodeError", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is(err, inner) = false, wanted true")
	}
	s := err.Error()
	if !strings.Contains(s, "failingMarshaler") || !strings.Contains(s, "inner") {
		t.Fatalf("err.Error() = %q, wanted message with type name and inner error", s)
	}

	s = (&EncodeError{Value: 42}).Error()
	if s != "keyz: cannot encode int" {
		t.Fatalf("Error() without cause = %q", s)
	}
}
