package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	require.False(t, d.HighContrast)
	require.False(t, d.ReduceMotion)
	require.Equal(t, 16, d.FontSize)
	require.Equal(t, ThemeDefault, d.ColorTheme)
	require.False(t, d.SoundFeedback)
	require.True(t, d.KeyboardNavigation)
	require.NoError(t, d.Validate())
}

func TestWith_ReplacesOnlyOneField(t *testing.T) {
	prev := Defaults().With(SetColorTheme(ThemeMonochrome))

	next := prev.With(SetFontSize(20))

	require.Equal(t, 20, next.FontSize)
	require.Equal(t, ThemeMonochrome, next.ColorTheme)
	require.Equal(t, prev.HighContrast, next.HighContrast)
	require.Equal(t, prev.ReduceMotion, next.ReduceMotion)
	require.Equal(t, prev.SoundFeedback, next.SoundFeedback)
	require.Equal(t, prev.KeyboardNavigation, next.KeyboardNavigation)

	// Copy-on-write: the prior value is untouched
	require.Equal(t, 16, prev.FontSize)
}

func TestWith_EveryConstructor(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		field  Field
		want   any
	}{
		{"high contrast", SetHighContrast(true), FieldHighContrast, true},
		{"reduce motion", SetReduceMotion(true), FieldReduceMotion, true},
		{"font size", SetFontSize(22), FieldFontSize, 22},
		{"color theme", SetColorTheme(ThemeHighContrast), FieldColorTheme, ThemeHighContrast},
		{"sound feedback", SetSoundFeedback(true), FieldSoundFeedback, true},
		{"keyboard navigation", SetKeyboardNavigation(false), FieldKeyboardNavigation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.field, tt.change.Field())
			require.Equal(t, tt.want, tt.change.Value())

			got, err := Defaults().With(tt.change).Get(tt.field)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWith_NilChange(t *testing.T) {
	require.Equal(t, Defaults(), Defaults().With(nil))
}

func TestWith_DoesNotClamp(t *testing.T) {
	s := Defaults().With(SetFontSize(40))
	require.Equal(t, 40, s.FontSize)
	require.ErrorIs(t, s.Validate(), ErrInvalidValue)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"defaults", Defaults(), false},
		{"min font", Defaults().With(SetFontSize(MinFontSize)), false},
		{"max font", Defaults().With(SetFontSize(MaxFontSize)), false},
		{"font too small", Defaults().With(SetFontSize(11)), true},
		{"font too large", Defaults().With(SetFontSize(25)), true},
		{"unknown theme", Defaults().With(SetColorTheme("sepia")), true},
		{"empty theme", Settings{FontSize: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidValue)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGet_UnknownField(t *testing.T) {
	_, err := Defaults().Get(Field("fontFamily"))
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestColorTheme_Label(t *testing.T) {
	require.Equal(t, "Default", ThemeDefault.Label())
	require.Equal(t, "Monochrome", ThemeMonochrome.Label())
	require.Equal(t, "High Contrast", ThemeHighContrast.Label())
	require.Equal(t, "sepia", ColorTheme("sepia").Label())
}

func TestParseColorTheme(t *testing.T) {
	for _, theme := range Themes {
		got, err := ParseColorTheme(string(theme))
		require.NoError(t, err)
		require.Equal(t, theme, got)
	}

	_, err := ParseColorTheme("High-Contrast")
	require.True(t, errors.Is(err, ErrInvalidValue))
}
