package layout

// Tracer receives layout decisions as they are made. It is injected
// once at engine construction; hot layout code never consults ambient
// configuration such as environment variables.
type Tracer interface {
	// Distribution reports a container's main-axis decision: the justify
	// mode, free space after sizing, and the resulting leading offset and
	// inter-item spacing.
	Distribution(container *Node, justify Justify, free, offset, spacing float64)

	// Alignment reports a child's cross-axis placement.
	Alignment(container, child *Node, align Align, offset float64)

	// Warnf reports a recoverable problem, such as an unrecognized
	// dimension unit degrading to auto.
	Warnf(n *Node, format string, args ...any)
}

// NopTracer discards all events. It is the engine default.
type NopTracer struct{}

func (NopTracer) Distribution(*Node, Justify, float64, float64, float64) {}
func (NopTracer) Alignment(*Node, *Node, Align, float64)                 {}
func (NopTracer) Warnf(*Node, string, ...any)                            {}
