// Package trace adapts structured loggers to the layout engine's
// tracer interface, so embedders get a real sink without writing one.
package trace

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vellum-ui/vellum/pkg/layout"
)

// Zap emits layout decisions on a zap logger at debug level; warnings
// go out at warn level.
type Zap struct {
	log *zap.Logger
}

// NewZap wraps the logger. A nil logger traces into the void.
func NewZap(log *zap.Logger) *Zap {
	if log == nil {
		log = zap.NewNop()
	}
	return &Zap{log: log}
}

// Distribution implements layout.Tracer.
func (z *Zap) Distribution(container *layout.Node, justify layout.Justify, free, offset, spacing float64) {
	z.log.Debug("distribution",
		zap.Stringer("container", container.Kind),
		zap.Stringer("justify", justify),
		zap.Float64("free", free),
		zap.Float64("offset", offset),
		zap.Float64("spacing", spacing),
	)
}

// Alignment implements layout.Tracer.
func (z *Zap) Alignment(container, child *layout.Node, align layout.Align, offset float64) {
	z.log.Debug("alignment",
		zap.Stringer("container", container.Kind),
		zap.Stringer("child", child.Kind),
		zap.Stringer("align", align),
		zap.Float64("offset", offset),
	)
}

// Warnf implements layout.Tracer.
func (z *Zap) Warnf(n *layout.Node, format string, args ...any) {
	name := "nil"
	if n != nil {
		name = n.Kind.String()
	}
	z.log.Warn(fmt.Sprintf(format, args...), zap.String("node", name))
}
