package services

import (
	"testing"
	"time"

	"trends-server/models"
)

func mustRange(t *testing.T, start, end string) models.DateRange {
	t.Helper()
	rng, err := models.ParseDateRange(start, end)
	if err != nil {
		t.Fatalf("Failed to parse range %s %s: %v", start, end, err)
	}
	return rng
}

// assertExactCover checks order, contiguity and exact cover of the original range.
func assertExactCover(t *testing.T, rng models.DateRange, segments []models.DateRange) {
	t.Helper()
	if len(segments) == 0 {
		t.Fatal("Expected at least one segment")
	}
	if !segments[0].Start.Equal(rng.Start) {
		t.Errorf("First segment starts at %s; want %s", segments[0].Start, rng.Start)
	}
	if !segments[len(segments)-1].End.Equal(rng.End) {
		t.Errorf("Last segment ends at %s; want %s", segments[len(segments)-1].End, rng.End)
	}
	for i, seg := range segments {
		if seg.End.Before(seg.Start) {
			t.Errorf("Segment %d has end before start: %s", i, seg)
		}
		if i == 0 {
			continue
		}
		wantStart := segments[i-1].End.AddDate(0, 0, 1)
		if !seg.Start.Equal(wantStart) {
			t.Errorf("Segment %d starts at %s; want %s (previous end + 1 day)", i, seg.Start, wantStart)
		}
	}
}

func TestDivideRange_DailyGranularityCap(t *testing.T) {
	// Arrange: ~3 years needs several daily-sized segments
	rng := mustRange(t, "2017-01-01", "2020-01-01")

	// Act
	segments := DivideRange(rng, "d", 0)

	// Assert
	assertExactCover(t, rng, segments)
	if len(segments) < 2 {
		t.Fatalf("Expected multiple segments, got %d", len(segments))
	}
	for i, seg := range segments {
		if seg.Days() > MAX_SEGMENT_DAYS_DAILY {
			t.Errorf("Segment %d spans %d days; cap is %d", i, seg.Days(), MAX_SEGMENT_DAYS_DAILY)
		}
	}
}

func TestDivideRange_WeeklyGranularityCap(t *testing.T) {
	// Arrange: ~12 years
	rng := mustRange(t, "2008-01-01", "2020-01-01")

	// Act
	segments := DivideRange(rng, "w", 0)

	// Assert
	assertExactCover(t, rng, segments)
	for i, seg := range segments {
		if seg.Days() > MAX_SEGMENT_DAYS_WEEKLY {
			t.Errorf("Segment %d spans %d days; cap is %d", i, seg.Days(), MAX_SEGMENT_DAYS_WEEKLY)
		}
	}
}

func TestDivideRange_ExplicitSegmentCount(t *testing.T) {
	// Arrange: 9-day span divided into 3 pieces
	rng := mustRange(t, "2020-01-01", "2020-01-10")

	// Act
	segments := DivideRange(rng, "d", 3)

	// Assert
	assertExactCover(t, rng, segments)
	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segments))
	}

	expected := []struct{ start, end string }{
		{"2020-01-01", "2020-01-04"},
		{"2020-01-05", "2020-01-08"},
		{"2020-01-09", "2020-01-10"},
	}
	for i, want := range expected {
		if got := segments[i].Start.Format(models.DateLayout); got != want.start {
			t.Errorf("Segment %d start = %s; want %s", i, got, want.start)
		}
		if got := segments[i].End.Format(models.DateLayout); got != want.end {
			t.Errorf("Segment %d end = %s; want %s", i, got, want.end)
		}
	}
}

func TestDivideRange_UnrecognizedGranularity(t *testing.T) {
	// Arrange
	rng := mustRange(t, "2015-01-01", "2020-01-01")

	// Act
	segments := DivideRange(rng, "monthly-ish", 0)

	// Assert: whole range as a single segment
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if !segments[0].Start.Equal(rng.Start) || !segments[0].End.Equal(rng.End) {
		t.Errorf("Segment = %s; want %s", segments[0], rng)
	}
}

func TestDivideRange_DegenerateRange(t *testing.T) {
	// Arrange
	rng := mustRange(t, "2020-06-15", "2020-06-15")

	// Act
	segments := DivideRange(rng, "d", 0)

	// Assert: exactly one zero-span segment
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Days() != 0 {
		t.Errorf("Expected zero-span segment, got %d days", segments[0].Days())
	}
}

func TestDivideRange_MoreSegmentsThanDays(t *testing.T) {
	// Arrange: 3-day span but 10 segments requested
	rng := mustRange(t, "2020-01-01", "2020-01-04")

	// Act
	segments := DivideRange(rng, "", 10)

	// Assert: cover stays exact with one-day pieces
	assertExactCover(t, rng, segments)
}

func TestDivideRange_SegmentsAscending(t *testing.T) {
	// Arrange
	rng := mustRange(t, "2010-01-01", "2020-01-01")

	// Act
	segments := DivideRange(rng, "d", 0)

	// Assert
	var previousEnd time.Time
	for i, seg := range segments {
		if i > 0 && !seg.Start.After(previousEnd) {
			t.Errorf("Segment %d not in ascending order", i)
		}
		previousEnd = seg.End
	}
}
