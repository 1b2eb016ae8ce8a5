package projection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/a11ypanel/internal/settings"
)

func TestDocument_ProjectDefaults(t *testing.T) {
	d := NewDocument()
	d.Project(settings.Defaults())

	require.Equal(t, 16, d.FontScale())
	require.Equal(t, []string{"enhanced-keyboard", "theme-default"}, d.Markers())
}

func TestDocument_ProjectAllOn(t *testing.T) {
	d := NewDocument()
	d.Project(settings.Settings{
		HighContrast:       true,
		ReduceMotion:       true,
		FontSize:           24,
		ColorTheme:         settings.ThemeHighContrast,
		SoundFeedback:      true,
		KeyboardNavigation: true,
	})

	require.Equal(t, 24, d.FontScale())
	require.Equal(t, []string{
		"enhanced-keyboard",
		"high-contrast",
		"reduced-motion",
		"theme-high-contrast",
	}, d.Markers())
}

func TestDocument_RemovesMarkers(t *testing.T) {
	d := NewDocument()
	on := settings.Defaults().
		With(settings.SetHighContrast(true)).
		With(settings.SetReduceMotion(true))
	d.Project(on)
	require.True(t, d.Has(MarkerHighContrast))
	require.True(t, d.Has(MarkerReducedMotion))

	off := on.
		With(settings.SetHighContrast(false)).
		With(settings.SetReduceMotion(false)).
		With(settings.SetKeyboardNavigation(false))
	d.Project(off)

	require.False(t, d.Has(MarkerHighContrast))
	require.False(t, d.Has(MarkerReducedMotion))
	require.False(t, d.Has(MarkerEnhancedKeyboard))
}

func TestDocument_Idempotent(t *testing.T) {
	s := settings.Defaults().
		With(settings.SetHighContrast(true)).
		With(settings.SetColorTheme(settings.ThemeMonochrome)).
		With(settings.SetFontSize(18))

	once := NewDocument()
	once.Project(s)

	twice := NewDocument()
	twice.Project(s)
	twice.Project(s)

	require.Equal(t, once.Markers(), twice.Markers())
	require.Equal(t, once.FontScale(), twice.FontScale())
}

func TestDocument_ExactlyOneThemeMarker(t *testing.T) {
	d := NewDocument()
	s := settings.Defaults()

	sequence := []settings.ColorTheme{
		settings.ThemeMonochrome,
		settings.ThemeHighContrast,
		settings.ThemeHighContrast,
		settings.ThemeDefault,
		settings.ThemeMonochrome,
	}
	for _, theme := range sequence {
		s = s.With(settings.SetColorTheme(theme))
		d.Project(s)

		require.Equal(t, []string{ThemeMarker(theme)}, d.ThemeMarkers())
	}
}

func TestDocument_ReplacesForeignThemeMarker(t *testing.T) {
	d := NewDocument()
	d.AddMarker("theme-sepia")
	d.AddMarker("print-layout")

	d.Project(settings.Defaults())

	require.Equal(t, []string{"theme-default"}, d.ThemeMarkers())
	require.True(t, d.Has("print-layout"), "unrelated markers are left alone")
}

func TestMulti_ProjectsInOrder(t *testing.T) {
	var order []string
	m := Multi{
		Func(func(settings.Settings) { order = append(order, "first") }),
		nil,
		Func(func(settings.Settings) { order = append(order, "second") }),
		Nop{},
	}

	m.Project(settings.Defaults())

	require.Equal(t, []string{"first", "second"}, order)
}
