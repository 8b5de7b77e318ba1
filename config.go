package gazeseg

import "github.com/sirupsen/logrus"

// Config holds the collaborators of a Classifier. Nil fields take
// defaults.
type Config struct {
	// NSLR is the index-based backend. Required for ClassifyNSLR.
	NSLR NSLRBackend

	// Remodnav constructs interval-based classifier instances.
	// Required for ClassifyRemodnav.
	Remodnav RemodnavFactory

	// NSLRTaxonomy overrides the built-in NSLR-HMM class-id
	// vocabulary. If nil, uses NSLRClasses().
	NSLRTaxonomy *IDTaxonomy

	// RemodnavTaxonomy overrides the full REMoDNaV vocabulary. If nil,
	// uses RemodnavClasses().
	RemodnavTaxonomy *CodeTaxonomy

	// RemodnavSimpleTaxonomy overrides the simplified REMoDNaV
	// vocabulary. If nil, uses RemodnavSimple().
	RemodnavSimpleTaxonomy *CodeTaxonomy

	// Logger receives the irregular-sampling warning and per-call
	// debug fields. If nil, uses logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.NSLRTaxonomy == nil {
		c.NSLRTaxonomy = NSLRClasses()
	}
	if c.RemodnavTaxonomy == nil {
		c.RemodnavTaxonomy = RemodnavClasses()
	}
	if c.RemodnavSimpleTaxonomy == nil {
		c.RemodnavSimpleTaxonomy = RemodnavSimple()
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
}
