package gradient

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	if o := defaultOptions(); o.strict {
		t.Error("default options are strict")
	}
}

func TestWithStrictStops(t *testing.T) {
	o := defaultOptions()
	WithStrictStops()(&o)
	if !o.strict {
		t.Error("WithStrictStops did not enable strict mode")
	}
}

func TestStrictStopsChangesOutcome(t *testing.T) {
	colors := []RGBA{Red, Green, Blue}
	stops := []float64{0, 0.5, 0.5}

	if _, err := Normalize(colors, stops); err != nil {
		t.Fatalf("lenient Normalize() error = %v", err)
	}
	if _, err := Normalize(colors, stops, WithStrictStops()); !errors.Is(err, ErrZeroWidthSegment) {
		t.Errorf("strict Normalize() error = %v, want ErrZeroWidthSegment", err)
	}
}
