package grammar

// HasLeftForm returns whether any alternative of g is longer than a single
// bare symbol. Under the left-linear pattern that can only be a body with a
// leading reference, so a grammar parsed left-linear that lacks one is
// indistinguishable from a right-linear grammar.
func HasLeftForm(g Grammar) bool {
	for _, r := range g.rules {
		for _, alt := range r.Alternatives {
			if alt.Long() {
				return true
			}
		}
	}
	return false
}

// ParseDetect parses lines after deciding which orientation they are written
// in. The lines are first parsed as left-linear; if that gives a grammar with
// left form, it is the result. Otherwise every production was a lone symbol
// or the productions did not fit the left-linear pattern, and the lines are
// parsed again as right-linear.
func ParseDetect(lines []string) (g Grammar, dropped string) {
	g, dropped = Parse(lines, LeftLinear)
	if HasLeftForm(g) {
		return g, dropped
	}

	return Parse(lines, RightLinear)
}
