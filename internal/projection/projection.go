// Package projection applies a settings record onto a presentation layer.
//
// A projection is one-way: the store pushes the full record on every change
// and never reads presentation state back.
package projection

import (
	"github.com/zjrosen/a11ypanel/internal/settings"
)

// Projector receives the full record after every change.
type Projector interface {
	Project(s settings.Settings)
}

// Func adapts a plain function to a Projector.
type Func func(s settings.Settings)

func (f Func) Project(s settings.Settings) { f(s) }

// Multi fans a record out to several projectors in order.
type Multi []Projector

func (m Multi) Project(s settings.Settings) {
	for _, p := range m {
		if p != nil {
			p.Project(s)
		}
	}
}

// Nop discards every record.
type Nop struct{}

func (Nop) Project(settings.Settings) {}
