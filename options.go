package lamina

// reconstructOptions holds configuration for the reconstruction pipeline.
type reconstructOptions struct {
	skipCollinearMerge bool
	strict             bool
}

// defaultOptions returns the default pipeline options.
func defaultOptions() reconstructOptions {
	return reconstructOptions{}
}

// WithoutCollinearMerge returns a Pipeline that skips the collinear line
// merge stage, leaving every input segment as its own line. Useful when the
// caller needs the traced loops to preserve the original segmentation.
func (p *Pipeline) WithoutCollinearMerge() *Pipeline {
	c := p.clone()
	c.options.skipCollinearMerge = true
	return c
}

// Strict returns a Pipeline that treats data-quality warnings as errors:
// any warning produced during reconstruction fails the terminal operation
// instead of being returned alongside the result.
func (p *Pipeline) Strict() *Pipeline {
	c := p.clone()
	c.options.strict = true
	return c
}
