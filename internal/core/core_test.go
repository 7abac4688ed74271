package core

import (
	"errors"
	"testing"
)

func TestPointLess(t *testing.T) {
	tests := []struct {
		a, b Point
		want bool
	}{
		{Point{1, 5}, Point{2, 0}, true},
		{Point{2, 0}, Point{1, 5}, false},
		{Point{1, 1}, Point{1, 2}, true},
		{Point{1, 2}, Point{1, 1}, false},
		{Point{1, 1}, Point{1, 1}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("(%v).Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestInRangeInclusive(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4} // distance exactly 5
	if !InRange(a, b, 5) {
		t.Fatalf("boundary distance should be in range")
	}
	if InRange(a, b, 4.999) {
		t.Fatalf("beyond range should not match")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	err := ConfigErrorf("no block %q", "bogus")
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("ConfigErrorf should wrap ErrConfiguration, got %v", err)
	}
	if errors.Is(err, ErrInvariant) {
		t.Fatalf("configuration error should not match ErrInvariant")
	}

	err = InvariantErrorf("cell occupied")
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("InvariantErrorf should wrap ErrInvariant, got %v", err)
	}
}
