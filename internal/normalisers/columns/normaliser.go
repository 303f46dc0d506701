// Package columns canonicalises raw well-log column labels.
package columns

import (
	"strings"

	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.HeaderNormaliser = (*Normaliser)(nil)

// Normaliser upper-cases and trims column labels. It performs no renaming,
// so unknown columns pass through under their normalised name.
type Normaliser struct{}

// New creates a new column normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise returns a new slice of canonical labels. Normalising an
// already normalised set returns an equal set.
func (n *Normaliser) Normalise(labels []string) []string {
	return Normalise(labels)
}

// Normalise canonicalises every label.
func Normalise(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = NormaliseLabel(l)
	}
	return out
}

// NormaliseLabel canonicalises a single label.
func NormaliseLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
