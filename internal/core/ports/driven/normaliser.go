package driven

// HeaderNormaliser canonicalises raw column labels into the curve
// vocabulary used by the engine. It never fails.
type HeaderNormaliser interface {
	Normalise(labels []string) []string
}
