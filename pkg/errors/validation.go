package errors

import (
	"slices"
	"strings"
	"unicode"
)

// Keywords accepted by the validators. These mirror the widget and layout
// packages so that errors stays a leaf package.
var (
	widgetNames = []string{"time", "main", "quicklinks", "notes", "quotes", "searchbar"}
	densities   = []string{"single", "double", "triple"}
	axes        = []string{"col", "row"}
	boxAligns   = []string{"", "start", "center", "end"}
	textAligns  = []string{"", "left", "center", "right"}
)

// ValidateWidget checks that name is a known widget identifier.
func ValidateWidget(name string) error {
	if name == "" {
		return New(ErrCodeInvalidWidget, "widget cannot be empty")
	}
	if !oneOf(name, widgetNames) {
		return New(ErrCodeInvalidWidget, "unknown widget %q (want one of %s)", name, strings.Join(widgetNames, ", "))
	}
	return nil
}

// ValidateDensity checks that name is single, double or triple.
func ValidateDensity(name string) error {
	if !oneOf(name, densities) {
		return New(ErrCodeInvalidDensity, "unknown density %q (want one of %s)", name, strings.Join(densities, ", "))
	}
	return nil
}

// ValidateAxis checks that name is col or row.
func ValidateAxis(name string) error {
	if !oneOf(name, axes) {
		return New(ErrCodeInvalidAxis, "unknown axis %q (want col or row)", name)
	}
	return nil
}

// ValidateBoxAlign checks a box alignment keyword. The empty string resets
// the alignment and is accepted.
func ValidateBoxAlign(name string) error {
	if !oneOf(name, boxAligns) {
		return New(ErrCodeInvalidAlign, "unknown box alignment %q (want start, center or end)", name)
	}
	return nil
}

// ValidateTextAlign checks a text alignment keyword. The empty string resets
// the alignment and is accepted.
func ValidateTextAlign(name string) error {
	if !oneOf(name, textAligns) {
		return New(ErrCodeInvalidAlign, "unknown text alignment %q (want left, center or right)", name)
	}
	return nil
}

// ValidateProfile validates a settings profile name. Profiles become part of
// storage keys and file names, so the rules are conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Letters, digits, '-', '_' and '.' only
//   - No path traversal sequences (..) and not "." alone
func ValidateProfile(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "profile cannot be empty")
	}

	const maxProfileLength = 64
	if len(name) > maxProfileLength {
		return New(ErrCodeInvalidInput, "profile too long (max %d characters)", maxProfileLength)
	}

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return New(ErrCodeInvalidInput, "profile contains invalid character %q", r)
	}

	if name == "." {
		return New(ErrCodeInvalidInput, "profile cannot be %q", name)
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "profile cannot contain path traversal sequences (..)")
	}

	return nil
}

func oneOf(s string, set []string) bool { return slices.Contains(set, s) }
