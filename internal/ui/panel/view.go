package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/a11ypanel/internal/keys"
	"github.com/zjrosen/a11ypanel/internal/settings"
	"github.com/zjrosen/a11ypanel/internal/ui/styles"
)

const (
	title    = "Accessibility Settings"
	subtitle = "Customize your interface for optimal comfort and accessibility"

	sliderWidth = settings.MaxFontSize - settings.MinFontSize + 1
	labelWidth  = 30
)

var tips = []string{
	"Use Tab key to navigate between form fields",
	"Press Space to activate buttons and checkboxes",
	"Use arrow keys to change sliders and theme",
	"Press ctrl+r to restore the defaults",
}

// View renders the panel.
func (m Model) View() string {
	cur := m.store.Current()
	layout := styles.CurrentLayout()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.AccentColor)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(styles.TextPrimaryColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(subtitle))
	b.WriteString("\n")

	var section Section
	for i, c := range m.controls {
		if c.section != section {
			section = c.section
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(string(section)))
			b.WriteString("\n")
		} else {
			b.WriteString(strings.Repeat("\n", layout.RowSpacing))
		}
		b.WriteString(m.renderRow(c, cur, i == m.focused, layout))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPreview(cur, layout))
	b.WriteString("\n\n")
	b.WriteString(renderTips())

	if layout.KeyHints {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(keys.For(cur.KeyboardNavigation)))
	}

	box := lipgloss.NewStyle().
		Border(styles.Border()).
		BorderForeground(styles.BorderColor).
		Padding(1, 2)
	if m.width > 4 {
		box = box.Width(m.width - 2)
	}
	return box.Render(b.String())
}

func (m Model) renderRow(c control, cur settings.Settings, focused bool, layout styles.Layout) string {
	labelStyle := lipgloss.NewStyle().
		Width(labelWidth).
		Foreground(styles.TextPrimaryColor).
		Bold(layout.Bold)

	cursor := "  "
	if focused {
		cursor = lipgloss.NewStyle().Foreground(styles.SelectionColor).Bold(true).Render("> ")
		labelStyle = labelStyle.Foreground(styles.SelectionColor)
	}

	var value string
	switch c.kind {
	case ControlToggle:
		v, _ := cur.Get(c.field)
		on, _ := v.(bool)
		value = renderToggle(on)
	case ControlSlider:
		value = renderSlider(cur.FontSize)
	case ControlSelect:
		value = renderSelect(cur.ColorTheme)
	}

	return cursor + labelStyle.Render(c.label) + " " + value
}

func renderToggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(styles.OnColor).Bold(true).Render("[ on ]")
	}
	return lipgloss.NewStyle().Foreground(styles.OffColor).Render("[ off ]")
}

func renderSlider(px int) string {
	filled := px - settings.MinFontSize + 1
	if filled < 0 {
		filled = 0
	}
	if filled > sliderWidth {
		filled = sliderWidth
	}
	bar := lipgloss.NewStyle().Foreground(styles.AccentColor).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.OffColor).Render(strings.Repeat("░", sliderWidth-filled))

	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	return fmt.Sprintf("%s %s %s  %dpx",
		muted.Render(fmt.Sprintf("Small (%dpx)", settings.MinFontSize)),
		bar,
		muted.Render(fmt.Sprintf("Large (%dpx)", settings.MaxFontSize)),
		px,
	)
}

func renderSelect(theme settings.ColorTheme) string {
	arrow := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	return arrow.Render("◀ ") +
		lipgloss.NewStyle().Foreground(styles.AccentColor).Render(theme.Label()) +
		arrow.Render(" ▶")
}

// renderPreview shows the effect of the current settings. The spinner is
// replaced by a static glyph when motion is reduced.
func (m Model) renderPreview(cur settings.Settings, layout styles.Layout) string {
	glyph := "•"
	if layout.Animate {
		glyph = m.spinner.View()
	}
	style := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Bold(layout.Bold)
	return style.Render(fmt.Sprintf("%s Preview: %s theme at %dpx", glyph, cur.ColorTheme.Label(), cur.FontSize))
}

func renderTips() string {
	head := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	item := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	lines := []string{head.Render("Accessibility Tips:")}
	for _, t := range tips {
		lines = append(lines, item.Render("• "+t))
	}
	return strings.Join(lines, "\n")
}
