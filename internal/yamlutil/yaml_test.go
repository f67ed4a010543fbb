package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	var s sample
	if err := UnmarshalStrict([]byte("name: demo\ncount: 3\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Name != "demo" || s.Count != 3 {
		t.Errorf("UnmarshalStrict() = %+v, want {demo 3}", s)
	}
}

func TestUnmarshalStrictUnknownField(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: demo\nbogus: 1\n"), &s)
	if err == nil {
		t.Fatal("UnmarshalStrict() expected error for unknown field")
	}
}

func TestUnmarshalStrictNilData(t *testing.T) {
	var s sample
	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("UnmarshalStrict(nil) error = %v, want ErrNilData", err)
	}
}

func TestUnmarshalStrictNilDestination(t *testing.T) {
	if err := UnmarshalStrict([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("UnmarshalStrict(.., nil) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalStrictTooLarge(t *testing.T) {
	var s sample
	data := []byte("name: " + strings.Repeat("x", MaxInputSize))
	if err := UnmarshalStrict(data, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict(large) error = %v, want ErrInputTooLarge", err)
	}
}
