package raceerrors

import (
	"errors"
	"testing"
)

func TestRecoverableClassification(t *testing.T) {
	recoverable := []Kind{KindDiscoveryEmpty, KindParameterUnmapped, KindValueOutOfEnvelope, KindCacheMiss}
	for _, k := range recoverable {
		if !k.Recoverable() {
			t.Errorf("expected %v to be recoverable", k)
		}
	}

	propagating := []Kind{KindInputInvalid, KindIOFailure, KindUnknown}
	for _, k := range propagating {
		if k.Recoverable() {
			t.Errorf("expected %v to propagate rather than be recovered locally", k)
		}
	}
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := Wrap(KindIOFailure, "writer.Write", "failed to save setup", cause)

	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to see through RaceError to its cause")
	}
	if wrapped.Message != "failed to save setup" {
		t.Errorf("expected the wrap message to be preserved, got %q", wrapped.Message)
	}
}

func TestWrapNilErrorReturnsNil(t *testing.T) {
	if Wrap(KindIOFailure, "op", "message", nil) != nil {
		t.Error("expected Wrap(nil) to return nil")
	}
}

func TestWithContextChains(t *testing.T) {
	e := New(KindParameterUnmapped, "mapping.Get", "no ac name found").WithContext("param", "SPRING_RATE_LF")
	if e.Context["param"] != "SPRING_RATE_LF" {
		t.Error("expected WithContext to attach and return the same error")
	}
}
