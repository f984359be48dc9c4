package answer

// Builder assembles structured answers from matched chunks. The stance and
// quote heuristics are injected so a future classifier can replace them
// without touching the builders.
type Builder struct {
	stance    StanceFn
	bestQuote QuotePicker
}

// NewBuilder creates a Builder with the default keyword/length heuristics.
func NewBuilder() *Builder {
	return &Builder{stance: AnalyzeStance, bestQuote: FindBestQuote}
}

// WithStanceFn replaces the stance heuristic.
func (b *Builder) WithStanceFn(fn StanceFn) *Builder {
	b.stance = fn
	return b
}

// WithQuotePicker replaces the quote selection heuristic.
func (b *Builder) WithQuotePicker(fn QuotePicker) *Builder {
	b.bestQuote = fn
	return b
}
