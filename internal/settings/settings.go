// Package settings defines the accessibility preferences record, its
// defaults, and the closed set of single-field changes that can be applied
// to it.
package settings

import (
	"errors"
	"fmt"
)

// Font size bounds in pixels.
const (
	MinFontSize     = 12
	MaxFontSize     = 24
	DefaultFontSize = 16
)

// ColorTheme selects the presentation palette.
type ColorTheme string

const (
	ThemeDefault      ColorTheme = "default"
	ThemeMonochrome   ColorTheme = "monochrome"
	ThemeHighContrast ColorTheme = "high-contrast"
)

// Themes lists every valid ColorTheme in display order.
var Themes = []ColorTheme{ThemeDefault, ThemeMonochrome, ThemeHighContrast}

// Valid reports whether t is one of Themes.
func (t ColorTheme) Valid() bool {
	for _, v := range Themes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns the human readable theme name.
func (t ColorTheme) Label() string {
	switch t {
	case ThemeDefault:
		return "Default"
	case ThemeMonochrome:
		return "Monochrome"
	case ThemeHighContrast:
		return "High Contrast"
	}
	return string(t)
}

// ParseColorTheme converts s to a ColorTheme, rejecting unknown names.
func ParseColorTheme(s string) (ColorTheme, error) {
	t := ColorTheme(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: color theme %q", ErrInvalidValue, s)
	}
	return t, nil
}

var (
	// ErrUnknownField is returned when a field name is not part of Settings.
	ErrUnknownField = errors.New("unknown settings field")
	// ErrInvalidValue is returned when a value is outside its field's domain.
	ErrInvalidValue = errors.New("invalid settings value")
)

// Settings is the full accessibility preferences record. It is a value
// type: copies are independent and every change produces a new value.
type Settings struct {
	HighContrast       bool       `json:"highContrast"`
	ReduceMotion       bool       `json:"reduceMotion"`
	FontSize           int        `json:"fontSize"`
	ColorTheme         ColorTheme `json:"colorTheme"`
	SoundFeedback      bool       `json:"soundFeedback"`
	KeyboardNavigation bool       `json:"keyboardNavigation"`
}

// Defaults returns the record used when nothing valid has been persisted.
func Defaults() Settings {
	return Settings{
		HighContrast:       false,
		ReduceMotion:       false,
		FontSize:           DefaultFontSize,
		ColorTheme:         ThemeDefault,
		SoundFeedback:      false,
		KeyboardNavigation: true,
	}
}

// Validate reports the first field outside its documented domain.
func (s Settings) Validate() error {
	if s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		return fmt.Errorf("%w: fontSize %d not in [%d, %d]", ErrInvalidValue, s.FontSize, MinFontSize, MaxFontSize)
	}
	if !s.ColorTheme.Valid() {
		return fmt.Errorf("%w: colorTheme %q", ErrInvalidValue, s.ColorTheme)
	}
	return nil
}

// With returns a copy of s with c applied. s is left untouched.
func (s Settings) With(c Change) Settings {
	if c == nil {
		return s
	}
	return c.apply(s)
}

// Get returns the value of field f as its natural Go type.
func (s Settings) Get(f Field) (any, error) {
	switch f {
	case FieldHighContrast:
		return s.HighContrast, nil
	case FieldReduceMotion:
		return s.ReduceMotion, nil
	case FieldFontSize:
		return s.FontSize, nil
	case FieldColorTheme:
		return s.ColorTheme, nil
	case FieldSoundFeedback:
		return s.SoundFeedback, nil
	case FieldKeyboardNavigation:
		return s.KeyboardNavigation, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
}
