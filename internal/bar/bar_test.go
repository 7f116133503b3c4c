package bar

import (
	"errors"
	"math"
	"testing"

	"github.com/chanwatch/core/internal/coreerr"
)

func TestValidateAcceptsWellFormedBar(t *testing.T) {
	b := Bar{Time: 1, Open: 10, High: 12, Low: 9, Close: 11}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsHighBelowBody(t *testing.T) {
	b := Bar{Time: 1, Open: 10, High: 10.5, Low: 9, Close: 11} // close > high
	err := b.Validate()
	if !errors.Is(err, coreerr.ErrMalformedBar) {
		t.Fatalf("Validate() error = %v, want wrapping ErrMalformedBar", err)
	}
}

func TestValidateRejectsLowAboveBody(t *testing.T) {
	b := Bar{Time: 1, Open: 10, High: 12, Low: 10.5, Close: 11} // low > open
	if err := b.Validate(); !errors.Is(err, coreerr.ErrMalformedBar) {
		t.Fatalf("Validate() error = %v, want wrapping ErrMalformedBar", err)
	}
}

func TestValidateRejectsNonFiniteValues(t *testing.T) {
	b := Bar{Time: 1, Open: math.NaN(), High: 12, Low: 9, Close: 11}
	if err := b.Validate(); !errors.Is(err, coreerr.ErrMalformedBar) {
		t.Fatalf("Validate() error = %v, want wrapping ErrMalformedBar", err)
	}
}

func TestValidateSequenceRejectsNonAscendingTime(t *testing.T) {
	bars := []Bar{
		{Time: 2, Open: 10, High: 12, Low: 9, Close: 11},
		{Time: 2, Open: 10, High: 12, Low: 9, Close: 11},
	}
	if err := ValidateSequence(bars); !errors.Is(err, coreerr.ErrMalformedBar) {
		t.Fatalf("ValidateSequence() error = %v, want wrapping ErrMalformedBar for a repeated timestamp", err)
	}
}

func TestValidateSequenceAcceptsStrictlyAscending(t *testing.T) {
	bars := []Bar{
		{Time: 1, Open: 10, High: 12, Low: 9, Close: 11},
		{Time: 2, Open: 11, High: 13, Low: 10, Close: 12},
	}
	if err := ValidateSequence(bars); err != nil {
		t.Fatalf("ValidateSequence() error = %v, want nil", err)
	}
}

func TestClosesHighsLowsExtractInOrder(t *testing.T) {
	bars := []Bar{
		{Close: 1, High: 2, Low: 0.5},
		{Close: 3, High: 4, Low: 2.5},
	}
	if got := Closes(bars); got[0] != 1 || got[1] != 3 {
		t.Fatalf("Closes() = %v", got)
	}
	if got := Highs(bars); got[0] != 2 || got[1] != 4 {
		t.Fatalf("Highs() = %v", got)
	}
	if got := Lows(bars); got[0] != 0.5 || got[1] != 2.5 {
		t.Fatalf("Lows() = %v", got)
	}
}

func TestContainsDetectsEitherDirection(t *testing.T) {
	// a fully spans b
	if !Contains(10, 0, 8, 2) {
		t.Error("expected a to contain b")
	}
	// b fully spans a
	if !Contains(8, 2, 10, 0) {
		t.Error("expected b to contain a (symmetric check)")
	}
	// overlapping but neither contains the other
	if Contains(10, 5, 8, 3) {
		t.Error("expected no containment for a merely overlapping pair")
	}
}
