package projection

import (
	"sort"
	"strings"
	"sync"

	"github.com/zjrosen/a11ypanel/internal/settings"
)

// Marker names set on the presentation root.
const (
	MarkerHighContrast     = "high-contrast"
	MarkerReducedMotion    = "reduced-motion"
	MarkerEnhancedKeyboard = "enhanced-keyboard"
	themeMarkerPrefix      = "theme-"
)

// ThemeMarker returns the marker for t, e.g. "theme-monochrome".
func ThemeMarker(t settings.ColorTheme) string {
	return themeMarkerPrefix + string(t)
}

// Document models the presentation root: a global font scale plus a set of
// class-like markers. Markers are set, not toggled, so projecting the same
// record twice leaves the same state as projecting it once.
type Document struct {
	mu        sync.RWMutex
	fontScale int
	markers   map[string]struct{}
}

func NewDocument() *Document {
	return &Document{markers: make(map[string]struct{})}
}

func (d *Document) Project(s settings.Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fontScale = s.FontSize
	d.set(MarkerHighContrast, s.HighContrast)
	d.set(MarkerReducedMotion, s.ReduceMotion)

	// Exactly one theme marker, including ones we never set ourselves
	for m := range d.markers {
		if strings.HasPrefix(m, themeMarkerPrefix) {
			delete(d.markers, m)
		}
	}
	d.markers[ThemeMarker(s.ColorTheme)] = struct{}{}

	d.set(MarkerEnhancedKeyboard, s.KeyboardNavigation)
}

func (d *Document) set(marker string, on bool) {
	if on {
		d.markers[marker] = struct{}{}
		return
	}
	delete(d.markers, marker)
}

// AddMarker sets an arbitrary marker, as another presentation component
// might. Projection leaves unrelated markers alone.
func (d *Document) AddMarker(marker string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.markers[marker] = struct{}{}
}

// FontScale returns the global font size in pixels, 0 before the first
// projection.
func (d *Document) FontScale() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fontScale
}

func (d *Document) Has(marker string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.markers[marker]
	return ok
}

// Markers returns the current markers sorted by name.
func (d *Document) Markers() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.markers))
	for m := range d.markers {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// ThemeMarkers returns the theme markers currently present.
func (d *Document) ThemeMarkers() []string {
	var out []string
	for _, m := range d.Markers() {
		if strings.HasPrefix(m, themeMarkerPrefix) {
			out = append(out, m)
		}
	}
	return out
}
