package storage

import (
	"testing"
	"time"
)

func TestParseCheckinDate(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2024-07-15", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-07-15 14:30:00", time.Date(2024, 7, 15, 14, 30, 0, 0, time.UTC), true},
		{" 2024-07-15 ", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-07-15T14:30:00Z", time.Date(2024, 7, 15, 14, 30, 0, 0, time.UTC), true},
		{"15/07/2024", time.Time{}, false},
		{"", time.Time{}, false},
		{"not a date", time.Time{}, false},
	}

	for _, tc := range cases {
		got, err := parseCheckinDate(tc.raw)
		if tc.ok {
			if err != nil {
				t.Errorf("parseCheckinDate(%q) failed: %v", tc.raw, err)
				continue
			}
			if !got.Equal(tc.want) {
				t.Errorf("parseCheckinDate(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		} else if err == nil {
			t.Errorf("parseCheckinDate(%q) should fail", tc.raw)
		}
	}
}
