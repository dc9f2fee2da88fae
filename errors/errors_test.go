package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantIs  bool
	}{
		"instance of the root": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"wrapped root": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"double wrapped root": {
			kind:   ErrNotFound,
			err:    Wrap(Wrap(ErrNotFound, "gone"), "sorry"),
			wantIs: true,
		},
		"different root": {
			kind:   ErrNotFound,
			err:    Wrap(ErrUnauthorized, "nope"),
			wantIs: false,
		},
		"stdlib error": {
			kind:   ErrNotFound,
			err:    fmt.Errorf("not found"),
			wantIs: false,
		},
		"nil kind against nil error": {
			kind:   nil,
			err:    nil,
			wantIs: true,
		},
		"member of a multi error": {
			kind:   ErrEmpty,
			err:    Append(ErrNotFound, Wrap(ErrEmpty, "blank")),
			wantIs: true,
		},
		"absent from a multi error": {
			kind:   ErrExpired,
			err:    Append(ErrNotFound, Wrap(ErrEmpty, "blank")),
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapAttachesStackTrace(t *testing.T) {
	err := Wrap(ErrNotFound, "outer")
	if stackTrace(err) == nil {
		t.Fatal("wrapped error must carry a stack trace")
	}
}

func TestWrapKeepsOriginalStackTrace(t *testing.T) {
	inner := Wrap(ErrNotFound, "inner")
	outer := Wrap(inner, "outer")
	if fmt.Sprintf("%v", stackTrace(inner)) != fmt.Sprintf("%v", stackTrace(outer)) {
		t.Fatal("wrapping must not overwrite an existing stack trace")
	}
}

func TestErrorCodeUniqueness(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "conflicting with unauthorized")
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("kaboom")
	}
	err := run()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending nils must return nil, got %+v", err)
	}

	single := Wrap(ErrEmpty, "blank")
	if err := Append(nil, single); err != single {
		t.Fatalf("appending a single error must return it unwrapped, got %+v", err)
	}

	multi := Append(ErrNotFound, ErrEmpty)
	if !ErrNotFound.Is(multi) || !ErrEmpty.Is(multi) {
		t.Fatalf("multi error must match all members: %+v", multi)
	}
}

func TestFieldErrors(t *testing.T) {
	var errs error
	errs = AppendField(errs, "Owner", ErrEmpty)
	errs = AppendField(errs, "Rate", Wrap(ErrAmount, "too big"))

	if got := FieldErrors(errs, "Owner"); len(got) != 1 || !ErrEmpty.Is(got[0]) {
		t.Fatalf("want a single Owner error, got %v", got)
	}
	if got := FieldErrors(errs, "Minters"); len(got) != 0 {
		t.Fatalf("want no Minters errors, got %v", got)
	}
}

func TestStdlibErrorsDoNotMatch(t *testing.T) {
	err := errors.New("external")
	if ErrHuman.Is(err) {
		t.Fatal("external error must not match a registered kind")
	}
}
