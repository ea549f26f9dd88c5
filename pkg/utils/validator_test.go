package utils

import "testing"

func TestValidateMarker(t *testing.T) {
	testCases := []struct {
		name      string
		marker    string
		wantError bool
	}{
		{"script", "<script", false},
		{"iframe", "<iframe", false},
		{"custom element", "<x-widget", false},
		{"missing bracket", "script", true},
		{"uppercase", "<SCRIPT", true},
		{"closing tag", "</script", true},
		{"empty", "", true},
		{"bare bracket", "<", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMarker(tc.marker)
			if tc.wantError && err == nil {
				t.Errorf("expected error for %q", tc.marker)
			}
			if !tc.wantError && err != nil {
				t.Errorf("unexpected error for %q: %v", tc.marker, err)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	if err := ValidateLabel("blog data"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateLabel("drafts<b>"); err == nil {
		t.Fatalf("expected error for markup in label")
	}
	if err := ValidateLabel("line\nbreak"); err == nil {
		t.Fatalf("expected error for newline in label")
	}
}
