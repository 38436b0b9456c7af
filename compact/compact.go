// Package compact provides a Transformer that trims long lookup results to
// their most relevant parts for quick viewing.
package compact

import "github.com/sonnes/ydcv/core"

const (
	maxExplains = 3
	maxWeb      = 2
)

// Config controls the compact transformer behavior.
type Config struct {
	StripWeb bool
}

// Compactor caps explanations and web references.
type Compactor struct {
	stripWeb bool
}

// New creates a Compactor from the given config.
func New(cfg Config) *Compactor {
	return &Compactor{stripWeb: cfg.StripWeb}
}

// Transform implements core.Transformer.
func (c *Compactor) Transform(e *core.Entry) error {
	if e.Basic != nil && len(e.Basic.Explains) > maxExplains {
		e.Basic.Explains = e.Basic.Explains[:maxExplains]
	}

	switch {
	case c.stripWeb:
		e.Web = nil
	case len(e.Web) > maxWeb:
		e.Web = e.Web[:maxWeb]
	}

	// A single translation reads better than a list in compact mode.
	if len(e.Translation) > 1 {
		e.Translation = e.Translation[:1]
	}
	return nil
}
