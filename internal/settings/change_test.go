package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"fontSize", FieldFontSize},
		{"font-size", FieldFontSize},
		{"font_size", FieldFontSize},
		{"FONTSIZE", FieldFontSize},
		{" highContrast ", FieldHighContrast},
		{"reduce-motion", FieldReduceMotion},
		{"color_theme", FieldColorTheme},
		{"sound-feedback", FieldSoundFeedback},
		{"keyboard-navigation", FieldKeyboardNavigation},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseField("fontFamily")
	require.ErrorIs(t, err, ErrUnknownField)
	require.Contains(t, err.Error(), "fontFamily")
}

func TestParseChange(t *testing.T) {
	tests := []struct {
		name  string
		field string
		raw   string
		want  Settings
	}{
		{"bool true", "highContrast", "true", Defaults().With(SetHighContrast(true))},
		{"bool on", "reduce-motion", "on", Defaults().With(SetReduceMotion(true))},
		{"bool off", "keyboardNavigation", "off", Defaults().With(SetKeyboardNavigation(false))},
		{"bool yes", "soundFeedback", "yes", Defaults().With(SetSoundFeedback(true))},
		{"font size", "fontSize", "20", Defaults().With(SetFontSize(20))},
		{"font size padded", "fontSize", " 12 ", Defaults().With(SetFontSize(12))},
		{"theme", "colorTheme", "monochrome", Defaults().With(SetColorTheme(ThemeMonochrome))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseChange(tt.field, tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, Defaults().With(c))
		})
	}
}

func TestParseChange_Errors(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		raw     string
		wantErr error
	}{
		{"unknown field", "fontFamily", "serif", ErrUnknownField},
		{"font not a number", "fontSize", "big", ErrInvalidValue},
		{"font below range", "fontSize", "11", ErrInvalidValue},
		{"font above range", "fontSize", "25", ErrInvalidValue},
		{"unknown theme", "colorTheme", "sepia", ErrInvalidValue},
		{"bad bool", "highContrast", "maybe", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseChange(tt.field, tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, c)
		})
	}
}
