package models

import "testing"

func TestFormatRegistrationID(t *testing.T) {
	cases := []struct {
		id   int64
		want string
	}{
		{1, "GOV-000001"},
		{7, "GOV-000007"},
		{42, "GOV-000042"},
		{999999, "GOV-999999"},
		{1000000, "GOV-1000000"},
	}
	for _, tc := range cases {
		if got := FormatRegistrationID(tc.id); got != tc.want {
			t.Errorf("FormatRegistrationID(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestRegistrationFormattedID(t *testing.T) {
	reg := Registration{ID: 42}
	if got := reg.FormattedID(); got != "GOV-000042" {
		t.Errorf("FormattedID() = %q, want GOV-000042", got)
	}
}
