package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  Date
		checkOut Date
		want     int
	}{
		{
			name:     "one night",
			checkIn:  New(2026, time.July, 7),
			checkOut: New(2026, time.July, 8),
			want:     1,
		},
		{
			name:     "seven nights across month boundary",
			checkIn:  New(2026, time.June, 30),
			checkOut: New(2026, time.July, 7),
			want:     7,
		},
		{
			name:     "same day",
			checkIn:  New(2026, time.July, 7),
			checkOut: New(2026, time.July, 7),
			want:     0,
		},
		{
			name:     "inverted dates are negative",
			checkIn:  New(2026, time.July, 7),
			checkOut: New(2026, time.June, 30),
			want:     -7,
		},
		{
			name:     "across leap day",
			checkIn:  New(2028, time.February, 28),
			checkOut: New(2028, time.March, 1),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Nights(%v, %v) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestOrdering(t *testing.T) {
	earlier := New(2026, time.June, 30)
	later := New(2026, time.July, 7)

	if !earlier.Before(later) {
		t.Error("expected June 30 before July 7")
	}
	if !later.After(earlier) {
		t.Error("expected July 7 after June 30")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date must not be before or after itself")
	}
	if !earlier.Equal(earlier) {
		t.Error("expected a date to equal itself")
	}
}

func TestFromTimeDropsClock(t *testing.T) {
	instant := time.Date(2026, time.July, 7, 23, 59, 58, 0, time.UTC)
	got := FromTime(instant)
	want := Date{Year: 2026, Month: time.July, Day: 7}

	if got != want {
		t.Errorf("FromTime = %+v, want %+v", got, want)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2026-07-07")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != New(2026, time.July, 7) {
		t.Errorf("Parse = %v, want 2026-07-07", got)
	}

	if _, err := Parse("07-07-2026"); err == nil {
		t.Error("expected error for non-ISO input")
	}
	if _, err := Parse(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2026, time.June, 30)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `"2026-06-30"` {
		t.Errorf("Marshal = %s, want \"2026-06-30\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestAddDays(t *testing.T) {
	d := New(2026, time.June, 30)
	if got := d.AddDays(7); got != New(2026, time.July, 7) {
		t.Errorf("AddDays(7) = %v, want 2026-07-07", got)
	}
	if got := d.AddDays(-1); got != New(2026, time.June, 29) {
		t.Errorf("AddDays(-1) = %v, want 2026-06-29", got)
	}
}
