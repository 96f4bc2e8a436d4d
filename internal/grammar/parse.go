package grammar

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrDroppedRecord is used by callers that refuse to ignore trailing
	// input that never formed a complete production.
	ErrDroppedRecord = errors.New("trailing input does not form a complete production")

	// ErrNoRules is used by callers that need at least one production.
	ErrNoRules = errors.New("grammar has no productions")
)

// production patterns for complete records. A terminal is a single word
// character; a reference is a bracketed word.
var (
	leftProductionPattern = regexp.MustCompile(
		`^\s*<(` + word + `+)>\s*->\s*` +
			`((?:<` + word + `+>\s+)?` + word + `(?:\s*\|\s*(?:<` + word + `+>\s+)?` + word + `)*)\s*$`,
	)
	rightProductionPattern = regexp.MustCompile(
		`^\s*<(` + word + `+)>\s*->\s*` +
			`(` + word + `(?:\s+<` + word + `+>)?(?:\s*\|\s*` + word + `(?:\s+<` + word + `+>)?)*)\s*$`,
	)
)

// Parser builds a Grammar from lines of production text fed to it one at a
// time. Non-blank lines are joined into a record until the record forms a
// complete production for the Parser's orientation, at which point it is
// committed and a new record is started. A record that never completes is
// kept growing; whatever is left of it when parsing finishes is dropped.
//
// Parser should not be created directly; use NewParser.
type Parser struct {
	orientation Orientation
	pattern     *regexp.Regexp

	g          Grammar
	record     strings.Builder
	pendingNT  string
	pendingAlt []Alternative
	hasPending bool
}

// NewParser creates a Parser that matches productions of the given
// orientation. It panics if o is not LeftLinear or RightLinear.
func NewParser(o Orientation) *Parser {
	p := &Parser{
		orientation: o,
		g:           Grammar{Orientation: o},
	}

	switch o {
	case LeftLinear:
		p.pattern = leftProductionPattern
	case RightLinear:
		p.pattern = rightProductionPattern
	default:
		panic("parser orientation must be LeftLinear or RightLinear")
	}

	return p
}

// Feed gives the next line of input to the Parser. It returns whether the
// line completed a production.
func (p *Parser) Feed(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	p.record.WriteRune(' ')
	p.record.WriteString(line)

	m := p.pattern.FindStringSubmatch(p.record.String())
	if m == nil {
		return false
	}

	p.commit()

	p.pendingNT = m[1]
	p.pendingAlt = nil
	for _, body := range strings.Split(m[2], "|") {
		p.pendingAlt = append(p.pendingAlt, ParseAlternative(body, p.orientation))
	}
	p.hasPending = true

	p.record.Reset()
	return true
}

func (p *Parser) commit() {
	if p.hasPending {
		p.g.Set(p.pendingNT, p.pendingAlt)
	}
}

// Finish ends parsing and returns the Grammar built. If input ended partway
// through a record, the text of that record is returned as dropped; otherwise
// dropped is empty.
func (p *Parser) Finish() (g Grammar, dropped string) {
	p.commit()
	p.hasPending = false

	return p.g, strings.TrimSpace(p.record.String())
}

// Parse parses every line as production text of the given orientation. See
// Parser for how lines are grouped into productions.
func Parse(lines []string, o Orientation) (g Grammar, dropped string) {
	p := NewParser(o)
	for _, line := range lines {
		p.Feed(line)
	}
	return p.Finish()
}
