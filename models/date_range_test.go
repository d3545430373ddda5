package models

import (
	"strings"
	"testing"
)

func TestParseDateRange(t *testing.T) {
	// Act
	rng, err := ParseDateRange("2020-01-01", "2020-01-10")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rng.Days() != 9 {
		t.Errorf("Days() = %d; want 9", rng.Days())
	}
	if rng.String() != "2020-01-01 2020-01-10" {
		t.Errorf("String() = %q; want '2020-01-01 2020-01-10'", rng.String())
	}
}

func TestParseDateRange_Degenerate(t *testing.T) {
	rng, err := ParseDateRange("2020-06-15", "2020-06-15")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rng.Days() != 0 {
		t.Errorf("Days() = %d; want 0", rng.Days())
	}
}

func TestParseDateRange_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "bad start format", start: "01/01/2020", end: "2020-01-10"},
		{name: "bad end format", start: "2020-01-01", end: "Jan 10, 2020"},
		{name: "end before start", start: "2020-01-10", end: "2020-01-01"},
		{name: "empty dates", start: "", end: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseDateRange(test.start, test.end)
			if err == nil {
				t.Errorf("Expected an error for %q %q, got nil", test.start, test.end)
			}
		})
	}
}

func TestParseDateRange_ErrorNamesOffendingDate(t *testing.T) {
	_, err := ParseDateRange("2020-13-45", "2020-01-10")
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if !strings.Contains(err.Error(), "2020-13-45") {
		t.Errorf("Error %q does not name the malformed date", err.Error())
	}
}
