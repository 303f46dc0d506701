// Package normalisers provides implementations of the normalisation ports.
// Each normaliser canonicalises one aspect of an uploaded table before the
// engine sees it.
//
// Normalisers are wired into the engine at startup.
package normalisers
