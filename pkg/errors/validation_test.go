package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid default", "topology", false},
		{"valid with dash", "lab-topology", false},
		{"valid with dot", "topology.v2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"with path /", "out/topology", true},
		{"with path \\", "out\\topology", true},
		{"hidden file", ".topology", true},
		{"null byte", "topo\x00logy", true},
		{"newline", "topo\nlogy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"current dir", ".", false},
		{"relative", "assets/icons", false},
		{"absolute", "/usr/share/labtopo", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"control char", "assets\x01", true},
		{"backslash", "assets\\icons", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
