package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names a Settings field. Values match the persisted JSON keys.
type Field string

const (
	FieldHighContrast       Field = "highContrast"
	FieldReduceMotion       Field = "reduceMotion"
	FieldFontSize           Field = "fontSize"
	FieldColorTheme         Field = "colorTheme"
	FieldSoundFeedback      Field = "soundFeedback"
	FieldKeyboardNavigation Field = "keyboardNavigation"
)

// Fields lists every Field in record order.
var Fields = []Field{
	FieldHighContrast,
	FieldReduceMotion,
	FieldFontSize,
	FieldColorTheme,
	FieldSoundFeedback,
	FieldKeyboardNavigation,
}

// Change replaces exactly one field of a Settings record.
//
// The set of changes is closed: only the constructors in this package can
// build one, so an update naming a field that does not exist cannot
// compile.
type Change interface {
	Field() Field
	Value() any
	apply(Settings) Settings
}

type boolChange struct {
	field Field
	value bool
}

func (c boolChange) Field() Field { return c.field }
func (c boolChange) Value() any   { return c.value }

func (c boolChange) apply(s Settings) Settings {
	switch c.field {
	case FieldHighContrast:
		s.HighContrast = c.value
	case FieldReduceMotion:
		s.ReduceMotion = c.value
	case FieldSoundFeedback:
		s.SoundFeedback = c.value
	case FieldKeyboardNavigation:
		s.KeyboardNavigation = c.value
	}
	return s
}

type fontSizeChange int

func (c fontSizeChange) Field() Field { return FieldFontSize }
func (c fontSizeChange) Value() any   { return int(c) }

func (c fontSizeChange) apply(s Settings) Settings {
	s.FontSize = int(c)
	return s
}

type colorThemeChange ColorTheme

func (c colorThemeChange) Field() Field { return FieldColorTheme }
func (c colorThemeChange) Value() any   { return ColorTheme(c) }

func (c colorThemeChange) apply(s Settings) Settings {
	s.ColorTheme = ColorTheme(c)
	return s
}

func SetHighContrast(v bool) Change { return boolChange{FieldHighContrast, v} }

func SetReduceMotion(v bool) Change { return boolChange{FieldReduceMotion, v} }

// SetFontSize does not clamp; callers supply values in
// [MinFontSize, MaxFontSize].
func SetFontSize(px int) Change { return fontSizeChange(px) }

func SetColorTheme(t ColorTheme) Change { return colorThemeChange(t) }

func SetSoundFeedback(v bool) Change { return boolChange{FieldSoundFeedback, v} }

func SetKeyboardNavigation(v bool) Change { return boolChange{FieldKeyboardNavigation, v} }

// ParseField resolves a field name. Matching ignores case, dashes and
// underscores so "font-size" and "font_size" both name FieldFontSize.
func ParseField(name string) (Field, error) {
	norm := normalizeFieldName(name)
	for _, f := range Fields {
		if normalizeFieldName(string(f)) == norm {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func normalizeFieldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// ParseChange builds a Change from text, validating the value against the
// field's domain. It is the boundary for untyped input such as CLI args.
func ParseChange(field, raw string) (Change, error) {
	f, err := ParseField(field)
	if err != nil {
		return nil, err
	}

	raw = strings.TrimSpace(raw)
	switch f {
	case FieldFontSize:
		px, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: fontSize %q is not an integer", ErrInvalidValue, raw)
		}
		if px < MinFontSize || px > MaxFontSize {
			return nil, fmt.Errorf("%w: fontSize %d not in [%d, %d]", ErrInvalidValue, px, MinFontSize, MaxFontSize)
		}
		return SetFontSize(px), nil

	case FieldColorTheme:
		t, err := ParseColorTheme(raw)
		if err != nil {
			return nil, err
		}
		return SetColorTheme(t), nil
	}

	v, err := parseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a boolean", ErrInvalidValue, f, raw)
	}
	return boolChange{field: f, value: v}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "y", "enable", "enabled":
		return true, nil
	case "off", "no", "n", "disable", "disabled":
		return false, nil
	}
	return strconv.ParseBool(s)
}
