package panel

import (
	"github.com/zjrosen/a11ypanel/internal/settings"
)

// ControlType selects how a control renders and reacts to keys.
type ControlType int

const (
	ControlToggle ControlType = iota // boolean switch
	ControlSlider                    // integer range (font size)
	ControlSelect                    // one of a fixed set (color theme)
)

// Section groups controls under a heading.
type Section string

const (
	SectionVisual     Section = "Visual Preferences"
	SectionAudio      Section = "Audio Preferences"
	SectionNavigation Section = "Navigation Preferences"
)

// control is one row of the panel bound to a settings field.
type control struct {
	kind    ControlType
	field   settings.Field
	label   string
	section Section
}

// defaultControls returns the panel rows in display order.
func defaultControls() []control {
	return []control{
		{kind: ControlToggle, field: settings.FieldHighContrast, label: "High Contrast Mode", section: SectionVisual},
		{kind: ControlToggle, field: settings.FieldReduceMotion, label: "Reduce Motion", section: SectionVisual},
		{kind: ControlSlider, field: settings.FieldFontSize, label: "Font Size", section: SectionVisual},
		{kind: ControlSelect, field: settings.FieldColorTheme, label: "Color Theme", section: SectionVisual},
		{kind: ControlToggle, field: settings.FieldSoundFeedback, label: "Enable Sound Feedback", section: SectionAudio},
		{kind: ControlToggle, field: settings.FieldKeyboardNavigation, label: "Enhanced Keyboard Navigation", section: SectionNavigation},
	}
}

// toggleChange flips a boolean field.
func toggleChange(field settings.Field, s settings.Settings) settings.Change {
	switch field {
	case settings.FieldHighContrast:
		return settings.SetHighContrast(!s.HighContrast)
	case settings.FieldReduceMotion:
		return settings.SetReduceMotion(!s.ReduceMotion)
	case settings.FieldSoundFeedback:
		return settings.SetSoundFeedback(!s.SoundFeedback)
	case settings.FieldKeyboardNavigation:
		return settings.SetKeyboardNavigation(!s.KeyboardNavigation)
	}
	return nil
}

// stepFontSize moves the slider by delta. Returns nil at the bounds so the
// store never sees an out-of-range value from the panel.
func stepFontSize(s settings.Settings, delta int) settings.Change {
	next := s.FontSize + delta
	if next < settings.MinFontSize || next > settings.MaxFontSize {
		return nil
	}
	return settings.SetFontSize(next)
}

// cycleTheme moves the select by delta, wrapping around.
func cycleTheme(s settings.Settings, delta int) settings.Change {
	idx := 0
	for i, t := range settings.Themes {
		if t == s.ColorTheme {
			idx = i
			break
		}
	}
	n := len(settings.Themes)
	idx = ((idx+delta)%n + n) % n
	return settings.SetColorTheme(settings.Themes[idx])
}
