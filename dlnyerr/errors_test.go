package dlnyerr

import (
	"errors"
	"testing"
)

func TestWrap_NilIsNil(t *testing.T) {
	if Wrap(InputError, "geom.Orient", nil) != nil {
		t.Fatal("expected Wrap(nil) to return nil")
	}
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(TopologyViolation, "quadedge.Splice", cause)

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected errors.As to find *Error, got %v", err)
	}
	if de.Kind != TopologyViolation {
		t.Errorf("expected Kind=TopologyViolation, got %v", de.Kind)
	}
	if de.Op != "quadedge.Splice" {
		t.Errorf("expected Op=quadedge.Splice, got %q", de.Op)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		InputError:            "InputError",
		GeometryInconsistency: "GeometryInconsistency",
		TopologyViolation:     "TopologyViolation",
		TransportError:        "TransportError",
		Kind(99):              "Kind(99)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
