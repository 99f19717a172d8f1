package errors

import (
	"testing"
)

func TestValidateNodeCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		want    int
		wantErr bool
	}{
		{"zero", "0", 0, 0, false},
		{"small", "3", 0, 3, false},
		{"padded", " 20 ", 0, 20, false},
		{"at limit", "100", 100, 100, false},
		{"no limit", "5000000", 0, 5000000, false},

		{"empty", "", 0, 0, true},
		{"blank", "   ", 0, 0, true},
		{"negative", "-1", 0, 0, true},
		{"not a number", "ten", 0, 0, true},
		{"float", "2.5", 0, 0, true},
		{"over limit", "101", 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateNodeCount(tt.input, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateNodeCount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidCount) {
					t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidCount)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ValidateNodeCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateMarker(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "≬", false},
		{"arrows", "⮂", false},
		{"ascii", "<->", false},

		{"empty", "", true},
		{"space", "a b", true},
		{"tab", "\t", true},
		{"newline", "≬\n", true},
		{"too long", "=========", true},
		{"invalid utf8", "\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarker(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMarker(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRankDir(t *testing.T) {
	for _, dir := range []string{"", "LR", "RL", "TB", "BT"} {
		if err := ValidateRankDir(dir); err != nil {
			t.Errorf("ValidateRankDir(%q) = %v, want nil", dir, err)
		}
	}
	for _, dir := range []string{"lr", "XY", "left"} {
		if err := ValidateRankDir(dir); err == nil {
			t.Errorf("ValidateRankDir(%q) = nil, want error", dir)
		}
	}
}
