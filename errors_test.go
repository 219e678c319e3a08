package asn1der

import (
	"errors"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := errUnmatchedTag(ClassContext)
	if !errors.Is(err, &Error{Kind: KindUnmatchedTag, Class: ClassContext}) {
		t.Error("errors.Is must match on Kind and Class for tag-related kinds")
	}
	if errors.Is(err, &Error{Kind: KindUnmatchedTag, Class: ClassUniversal}) {
		t.Error("errors.Is must not match a different Class")
	}
	if errors.Is(err, &Error{Kind: KindNoValue}) {
		t.Error("errors.Is must not match a different Kind")
	}
}

func TestError_nestingMessages(t *testing.T) {
	inner := errNoDataForType()
	field := WrapField("Person", "Age", inner)
	if field.Error() != "Person::Age => "+inner.Error() {
		t.Errorf("got %q", field.Error())
	}

	seq := WrapSequence("Person", field)
	want := "Person => " + field.Error()
	if seq.Error() != want {
		t.Errorf("got %q, want %q", seq.Error(), want)
	}
}

func TestAsError_plainErrorAndDirectError(t *testing.T) {
	inner := errASCII()
	wrapped := errors.New("context: " + inner.Error())
	if _, ok := AsError(wrapped); ok {
		t.Error("a plain error must not be mistaken for *Error")
	}

	if e, ok := AsError(inner); !ok || e.Kind != KindASCII {
		t.Error("AsError must find the *Error at the top of a non-nested chain")
	}
}

func TestKindOf(t *testing.T) {
	nested := WrapSequence("Outer", WrapField("Inner", "F", errConstraint("bad")))
	k, ok := KindOf(nested)
	if !ok || k != KindSequence {
		t.Errorf("KindOf must report the outermost Kind, got %v, %v", k, ok)
	}
}
