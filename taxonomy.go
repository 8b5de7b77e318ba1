package gazeseg

import "strconv"

// Canonical labels shared by both backends.
const (
	LabelFixation      = "Fixation"
	LabelSaccade       = "Saccade"
	LabelSmoothPursuit = "Smooth Pursuit"
	LabelPSO           = "PSO"

	// LabelNone marks samples no classifier claimed.
	LabelNone = "None"
)

// Refined labels only emitted by the interval backend's full vocabulary.
const (
	LabelISaccade           = "ISaccade"
	LabelHighVelocityPSO    = "High-Velocity PSO"
	LabelLowVelocityPSO     = "Low-Velocity PSO"
	LabelHighVelocityPSONCB = "High-Velocity PSO (NCB)"
	LabelLowVelocityPSONCB  = "Low-Velocity PSO (NCB)"
)

// NSLR-HMM native class ids.
const (
	NSLRNone          = 0 // no classification
	NSLRFixation      = 1
	NSLRSaccade       = 2
	NSLRPSO           = 3
	NSLRSmoothPursuit = 4
)

// IDTaxonomy maps integer native class ids to canonical labels. It is
// immutable after construction and safe for unsynchronized concurrent
// reads.
type IDTaxonomy struct {
	name    string
	entries map[int]string
}

// NewIDTaxonomy creates a taxonomy from the given table. The table is
// copied; later mutation of the argument does not affect the taxonomy.
func NewIDTaxonomy(name string, entries map[int]string) *IDTaxonomy {
	copied := make(map[int]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &IDTaxonomy{name: name, entries: copied}
}

// Name returns the taxonomy's identifying name.
func (t *IDTaxonomy) Name() string { return t.name }

// Lookup translates a native class id to its canonical label. Returns
// an UnknownLabelError if the id is not in the table.
func (t *IDTaxonomy) Lookup(id int) (string, error) {
	label, ok := t.entries[id]
	if !ok {
		return "", &UnknownLabelError{Taxonomy: t.name, Native: strconv.Itoa(id)}
	}
	return label, nil
}

// CodeTaxonomy maps short native label codes to canonical labels. It is
// immutable after construction and safe for unsynchronized concurrent
// reads.
type CodeTaxonomy struct {
	name    string
	entries map[string]string
}

// NewCodeTaxonomy creates a taxonomy from the given table. The table is
// copied; later mutation of the argument does not affect the taxonomy.
func NewCodeTaxonomy(name string, entries map[string]string) *CodeTaxonomy {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &CodeTaxonomy{name: name, entries: copied}
}

// Name returns the taxonomy's identifying name.
func (t *CodeTaxonomy) Name() string { return t.name }

// Lookup translates a native label code to its canonical label. Returns
// an UnknownLabelError if the code is not in the table.
func (t *CodeTaxonomy) Lookup(code string) (string, error) {
	label, ok := t.entries[code]
	if !ok {
		return "", &UnknownLabelError{Taxonomy: t.name, Native: code}
	}
	return label, nil
}

// NSLRClasses returns the NSLR-HMM class-id vocabulary. Id 0 is the
// backend's own sentinel for unclassified samples and is the only
// native value allowed to map to "None".
func NSLRClasses() *IDTaxonomy {
	return NewIDTaxonomy("nslr-hmm", map[int]string{
		NSLRNone:          LabelNone,
		NSLRFixation:      LabelFixation,
		NSLRSaccade:       LabelSaccade,
		NSLRPSO:           LabelPSO,
		NSLRSmoothPursuit: LabelSmoothPursuit,
	})
}

// RemodnavClasses returns the full REMoDNaV vocabulary, keeping the
// direction/quality-refined saccade and PSO variants distinct.
func RemodnavClasses() *CodeTaxonomy {
	return NewCodeTaxonomy("remodnav", map[string]string{
		"FIXA": LabelFixation,
		"SACC": LabelSaccade,
		"ISAC": LabelISaccade,
		"PURS": LabelSmoothPursuit,
		"HPSO": LabelHighVelocityPSO,
		"LPSO": LabelLowVelocityPSO,
		"IHPS": LabelHighVelocityPSONCB,
		"ILPS": LabelLowVelocityPSONCB,
	})
}

// RemodnavSimple returns the simplified REMoDNaV vocabulary, collapsing
// the refined variants into their base categories.
func RemodnavSimple() *CodeTaxonomy {
	return NewCodeTaxonomy("remodnav-simple", map[string]string{
		"FIXA": LabelFixation,
		"SACC": LabelSaccade,
		"ISAC": LabelSaccade,
		"PURS": LabelSmoothPursuit,
		"HPSO": LabelPSO,
		"LPSO": LabelPSO,
		"IHPS": LabelPSO,
		"ILPS": LabelPSO,
	})
}
