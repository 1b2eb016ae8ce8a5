// Package styles holds the terminal palette and layout derived from the
// current accessibility settings.
//
// The package-level colors are what views render with. Apply (or the
// Projector adapter) swaps them whenever the settings record changes.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zjrosen/a11ypanel/internal/settings"
)

// Palette is a named set of colors for one color theme.
type Palette struct {
	Description string
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor
	Selection   lipgloss.AdaptiveColor
	On          lipgloss.AdaptiveColor
	Off         lipgloss.AdaptiveColor
}

// Presets maps every color theme to its palette.
var Presets = map[settings.ColorTheme]Palette{
	settings.ThemeDefault: {
		Description: "Soft colors tuned for everyday use",
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1E1E2E", Dark: "#CDD6F4"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#A6ADC8"},
		Accent:      lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"},
		Border:      lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#45475A"},
		Selection:   lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"},
		On:          lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"},
		Off:         lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"},
	},
	settings.ThemeMonochrome: {
		Description: "Grayscale only, no hue cues",
		TextPrimary: lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"},
		Accent:      lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		Border:      lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"},
		Selection:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		On:          lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		Off:         lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"},
	},
	settings.ThemeHighContrast: {
		Description: "Maximum contrast: pure black, white and yellow",
		TextPrimary: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		Accent:      lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#FFFF00"},
		Border:      lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		Selection:   lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#FFFF00"},
		On:          lipgloss.AdaptiveColor{Light: "#006600", Dark: "#00FF00"},
		Off:         lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	},
}

// Colors views render with. Replaced by Apply.
var (
	TextPrimaryColor = Presets[settings.ThemeDefault].TextPrimary
	TextMutedColor   = Presets[settings.ThemeDefault].TextMuted
	AccentColor      = Presets[settings.ThemeDefault].Accent
	BorderColor      = Presets[settings.ThemeDefault].Border
	SelectionColor   = Presets[settings.ThemeDefault].Selection
	OnColor          = Presets[settings.ThemeDefault].On
	OffColor         = Presets[settings.ThemeDefault].Off
)

// Layout is the non-color part of the presentation.
type Layout struct {
	// Bold renders labels bold and uses a thick border.
	Bold bool
	// Animate allows spinners and other motion.
	Animate bool
	// KeyHints shows the help bar and vim-style navigation.
	KeyHints bool
	// RowSpacing is the number of blank lines between controls,
	// 0 at the smallest font size up to 3 at the largest.
	RowSpacing int
	// FontSize is the requested size in pixels, shown in previews.
	FontSize int
}

var (
	mu             sync.RWMutex
	currentLayout  = layoutFor(settings.Defaults())
	defaultProfile = lipgloss.ColorProfile()
)

// CurrentLayout returns the layout set by the last Apply.
func CurrentLayout() Layout {
	mu.RLock()
	defer mu.RUnlock()
	return currentLayout
}

// Apply projects s onto the package palette, layout and color profile.
func Apply(s settings.Settings) {
	mu.Lock()
	defer mu.Unlock()

	p, ok := Presets[s.ColorTheme]
	if !ok {
		p = Presets[settings.ThemeDefault]
	}
	// High contrast wins over whatever theme is selected
	if s.HighContrast {
		p = Presets[settings.ThemeHighContrast]
	}

	TextPrimaryColor = p.TextPrimary
	TextMutedColor = p.TextMuted
	AccentColor = p.Accent
	BorderColor = p.Border
	SelectionColor = p.Selection
	OnColor = p.On
	OffColor = p.Off

	lipgloss.SetColorProfile(ColorProfile(s.ColorTheme))
	currentLayout = layoutFor(s)
}

// ColorProfile returns the terminal profile for theme. Monochrome drops
// to ASCII so no color escapes are emitted at all.
func ColorProfile(theme settings.ColorTheme) termenv.Profile {
	if theme == settings.ThemeMonochrome {
		return termenv.Ascii
	}
	return defaultProfile
}

func layoutFor(s settings.Settings) Layout {
	spacing := (s.FontSize - settings.MinFontSize) / 4
	if spacing < 0 {
		spacing = 0
	}
	if spacing > 3 {
		spacing = 3
	}
	return Layout{
		Bold:       s.HighContrast,
		Animate:    !s.ReduceMotion,
		KeyHints:   s.KeyboardNavigation,
		RowSpacing: spacing,
		FontSize:   s.FontSize,
	}
}

// Projector adapts Apply to projection.Projector.
type Projector struct{}

func (Projector) Project(s settings.Settings) { Apply(s) }

// Border returns the panel border for the current layout.
func Border() lipgloss.Border {
	if CurrentLayout().Bold {
		return lipgloss.ThickBorder()
	}
	return lipgloss.RoundedBorder()
}
