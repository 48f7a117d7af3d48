package cli

import (
	"fmt"
	"strings"
)

// Form selects the wire form a command works with.
type Form string

const (
	FormSigned   Form = "signed"
	FormUnsigned Form = "unsigned"
	FormFixed32  Form = "fixed32"
)

func (f *Form) Set(s string) error {
	switch form := Form(strings.ToLower(s)); form {
	case FormSigned, FormUnsigned, FormFixed32:
		*f = form
		return nil
	}
	return fmt.Errorf("unknown form: %s (values: signed, unsigned, fixed32)", s)
}

func (f Form) String() string {
	return string(f)
}

func (f *Form) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}
