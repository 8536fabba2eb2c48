package model

import (
	"errors"
	"testing"
)

func TestDuration_IsIndefinite(t *testing.T) {
	tests := []struct {
		duration Duration
		expected bool
	}{
		{DurationShort, false},
		{DurationLong, false},
		{DurationIndefinite, true},
	}

	for _, test := range tests {
		result := test.duration.IsIndefinite()
		if result != test.expected {
			t.Errorf("Duration(%s).IsIndefinite() = %v, expected %v", test.duration, result, test.expected)
		}
	}
}

func TestParseDuration(t *testing.T) {
	for _, d := range Durations() {
		parsed, err := ParseDuration(d.String())
		if err != nil {
			t.Fatalf("ParseDuration(%q) returned error: %v", d, err)
		}
		if parsed != d {
			t.Errorf("ParseDuration(%q) = %s", d, parsed)
		}
	}

	_, err := ParseDuration("Forever")
	if !errors.Is(err, ErrUnknownDuration) {
		t.Errorf("Expected ErrUnknownDuration, got %v", err)
	}
}

func TestVisibilityState_IsVisible(t *testing.T) {
	if VisibilityHidden.IsVisible() {
		t.Error("Hidden should not report visible")
	}
	if !VisibilityVisible.IsVisible() {
		t.Error("Visible should report visible")
	}
}

func TestDirection_Sign(t *testing.T) {
	if DirectionTop.Sign() != -1 {
		t.Errorf("Top sign = %v, expected -1", DirectionTop.Sign())
	}
	if DirectionBottom.Sign() != 1 {
		t.Errorf("Bottom sign = %v, expected 1", DirectionBottom.Sign())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"Top", DirectionTop},
		{"Bottom", DirectionBottom},
		{"", DirectionTop},
		{"sideways", DirectionTop},
	}

	for _, test := range tests {
		result := ParseDirection(test.input)
		if result != test.expected {
			t.Errorf("ParseDirection(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestScrollDirection_AllowsBanner(t *testing.T) {
	tests := []struct {
		state    ScrollDirection
		expected bool
	}{
		{ScrollSettledAtTop, true},
		{ScrollSettleAfterUpScroll, true},
		{ScrollSettledAfterDownScroll, false},
	}

	for _, test := range tests {
		result := test.state.AllowsBanner()
		if result != test.expected {
			t.Errorf("ScrollDirection(%s).AllowsBanner() = %v, expected %v", test.state, result, test.expected)
		}
	}
}
