package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"iso date", "1990-02-28", time.Date(1990, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "1990-02-28T14:33:00Z", time.Date(1990, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{"slash date", "28/02/1990", time.Date(1990, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{"impossible calendar date", "1990-02-30", time.Time{}, true},
		{"month out of range", "1990-13-01", time.Time{}, true},
		{"garbage", "not-a-date", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
