package errors

import (
	"strings"
	"testing"
)

func TestValidateWidget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"time", "time", false},
		{"searchbar", "searchbar", false},
		{"quicklinks", "quicklinks", false},

		{"empty", "", true},
		{"dom handle", "linkblocks", true},
		{"case", "Time", true},
		{"unknown", "weather", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWidget(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWidget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWidget) {
				t.Errorf("ValidateWidget(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateKeywords(t *testing.T) {
	tests := []struct {
		name     string
		validate func(string) error
		input    string
		code     Code
	}{
		{"density single", ValidateDensity, "single", ""},
		{"density triple", ValidateDensity, "triple", ""},
		{"density empty", ValidateDensity, "", ErrCodeInvalidDensity},
		{"density quad", ValidateDensity, "quad", ErrCodeInvalidDensity},

		{"axis col", ValidateAxis, "col", ""},
		{"axis row", ValidateAxis, "row", ""},
		{"axis diagonal", ValidateAxis, "diagonal", ErrCodeInvalidAxis},

		{"box reset", ValidateBoxAlign, "", ""},
		{"box end", ValidateBoxAlign, "end", ""},
		{"box left", ValidateBoxAlign, "left", ErrCodeInvalidAlign},

		{"text reset", ValidateTextAlign, "", ""},
		{"text right", ValidateTextAlign, "right", ""},
		{"text start", ValidateTextAlign, "start", ErrCodeInvalidAlign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(tt.input)
			if got := GetCode(err); got != tt.code {
				t.Errorf("validate(%q) code = %q, want %q (err %v)", tt.input, got, tt.code, err)
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "default", false},
		{"with dash", "work-laptop", false},
		{"with dot", "home.v2", false},
		{"unicode letters", "bürö", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"slash", "a/b", true},
		{"traversal", "a..b", true},
		{"current directory", ".", true},
		{"dotfile", ".hidden", false},
		{"space", "my profile", true},
		{"colon", "settings:x", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
