// Package domain defines the puppy mood label vocabulary.
package domain

import "strings"

// Label is one of the four fixed mood labels shown next to the form.
type Label string

const (
	LabelNormal  Label = "normal"
	LabelAlegre  Label = "alegre"
	LabelDudosa  Label = "dudosa"
	LabelMolesta Label = "molesta"
)

// MinClassifiableLen is the minimum text length worth classifying;
// anything shorter stays LabelNormal without an oracle call.
const MinClassifiableLen = 5

// ParseLabel trims and lower-cases a raw oracle reply and accepts it only
// if it is exactly one of the four labels.
func ParseLabel(raw string) (Label, bool) {
	switch Label(strings.ToLower(strings.TrimSpace(raw))) {
	case LabelNormal:
		return LabelNormal, true
	case LabelAlegre:
		return LabelAlegre, true
	case LabelDudosa:
		return LabelDudosa, true
	case LabelMolesta:
		return LabelMolesta, true
	}
	return LabelNormal, false
}
