package models

import "sort"

// Variant describes one value of a type discriminator: the tag itself,
// a display label, and the detail fields a record view renders for it.
// Evidence and intelligence records branch on their type tag, so the
// schema per tag is registered here instead of scattered through views.
type Variant struct {
	Tag    string
	Label  string
	Fields []string
}

var evidenceVariants = map[string]Variant{
	"physical": {
		Tag:    "physical",
		Label:  "Physical Evidence",
		Fields: []string{"location", "collectedBy", "collectionDate", "status"},
	},
	"digital": {
		Tag:    "digital",
		Label:  "Digital Evidence",
		Fields: []string{"location", "collectedBy", "collectionDate", "status", "analysisResults"},
	},
	"biological": {
		Tag:    "biological",
		Label:  "Biological Evidence",
		Fields: []string{"location", "collectedBy", "collectionDate", "status", "analysisResults"},
	},
	"photographic": {
		Tag:    "photographic",
		Label:  "Photographic Evidence",
		Fields: []string{"location", "collectedBy", "collectionDate", "status"},
	},
}

var intelligenceVariants = map[string]Variant{
	"strategic": {
		Tag:    "strategic",
		Label:  "Strategic Intelligence",
		Fields: []string{"source", "reliability", "classification", "analyst", "relatedCases", "tags"},
	},
	"tactical": {
		Tag:    "tactical",
		Label:  "Tactical Intelligence",
		Fields: []string{"source", "reliability", "classification", "analyst", "relatedCases", "tags"},
	},
	"operational": {
		Tag:    "operational",
		Label:  "Operational Intelligence",
		Fields: []string{"source", "reliability", "classification", "analyst", "relatedCases", "tags"},
	},
}

// EvidenceVariant looks up the registered schema for an evidence type tag.
func EvidenceVariant(tag string) (Variant, bool) {
	v, ok := evidenceVariants[tag]
	return v, ok
}

// IntelligenceVariant looks up the registered schema for an intelligence
// type tag.
func IntelligenceVariant(tag string) (Variant, bool) {
	v, ok := intelligenceVariants[tag]
	return v, ok
}

// EvidenceTypes returns the registered evidence type tags, sorted.
func EvidenceTypes() []string { return tags(evidenceVariants) }

// IntelligenceTypes returns the registered intelligence type tags, sorted.
func IntelligenceTypes() []string { return tags(intelligenceVariants) }

func tags(m map[string]Variant) []string {
	out := make([]string, 0, len(m))
	for tag := range m {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
