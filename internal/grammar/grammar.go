// Package grammar holds regular grammars read from BNF-like production text,
// along with the parsing, orientation detection, and alphabet extraction
// performed on them.
package grammar

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Epsilon is the symbol for the empty string. It is treated as an ordinary
// terminal when it appears in a production.
const Epsilon = "ε"

// word is a single grammar-symbol character. Unlike \w it includes non-ASCII
// letters so that Epsilon and non-Latin names are words.
const word = `[\p{L}\p{N}_]`

var (
	symbolPattern   = regexp.MustCompile(`(<?)(` + word + `+)(>?)`)
	leftAltPattern  = regexp.MustCompile(`^<(` + word + `+)>\s*(` + word + `+)`)
	rightAltPattern = regexp.MustCompile(`^(` + word + `+)\s*<(` + word + `+)>`)
)

// Orientation is which side of a production body the nonterminal reference is
// placed on.
type Orientation int

const (
	Unknown Orientation = iota
	LeftLinear
	RightLinear
)

func (o Orientation) String() string {
	switch o {
	case LeftLinear:
		return "left-linear"
	case RightLinear:
		return "right-linear"
	default:
		return "unknown"
	}
}

// ParseOrientation parses "left" or "right" (or the full names given by
// Orientation.String) into an Orientation. Any other value is an error.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "left-linear":
		return LeftLinear, nil
	case "right", "right-linear":
		return RightLinear, nil
	default:
		return Unknown, fmt.Errorf("not a grammar orientation: %q", s)
	}
}

// Alternative is a single right-hand side of a production.
type Alternative struct {
	// Text is the body exactly as given, with surrounding space trimmed.
	Text string

	// NonTerminal is the name of the referenced nonterminal without its
	// brackets. It is empty if the body has no reference, or if it has one
	// that is not positioned for the orientation it was parsed with.
	NonTerminal string
}

// ParseAlternative parses the body of a production in the given orientation.
// It never fails; a body that does not hold a reference where the orientation
// places one simply has no NonTerminal.
func ParseAlternative(s string, o Orientation) Alternative {
	alt := Alternative{Text: strings.TrimSpace(s)}

	switch o {
	case LeftLinear:
		if m := leftAltPattern.FindStringSubmatch(alt.Text); m != nil {
			alt.NonTerminal = m[1]
		}
	case RightLinear:
		if m := rightAltPattern.FindStringSubmatch(alt.Text); m != nil {
			alt.NonTerminal = m[2]
		}
	}

	return alt
}

// Terminals returns every word in the body that is not enclosed in angle
// brackets, in the order they appear.
func (alt Alternative) Terminals() []string {
	var terms []string
	for _, m := range symbolPattern.FindAllStringSubmatch(alt.Text, -1) {
		if m[1] == "" && m[3] == "" {
			terms = append(terms, m[2])
		}
	}
	return terms
}

// HasTerminal returns whether sym appears in the body as a whole terminal
// word.
func (alt Alternative) HasTerminal(sym string) bool {
	for _, t := range alt.Terminals() {
		if t == sym {
			return true
		}
	}
	return false
}

// Long returns whether the body is more than a single bare symbol character,
// which only a left-linear parse of a reference-carrying body produces.
func (alt Alternative) Long() bool {
	return utf8.RuneCountInString(alt.Text) > 1
}

func (alt Alternative) String() string {
	return alt.Text
}

// Rule is a nonterminal along with every alternative body it expands to.
type Rule struct {
	NonTerminal  string
	Alternatives []Alternative
}

func (r Rule) String() string {
	alts := make([]string, len(r.Alternatives))
	for i := range r.Alternatives {
		alts[i] = r.Alternatives[i].Text
	}
	return fmt.Sprintf("<%s> -> %s", r.NonTerminal, strings.Join(alts, " | "))
}

// Grammar is a set of Rules in the order their nonterminals were first
// declared. The zero value is an empty Grammar of unknown orientation ready to
// use.
type Grammar struct {
	Orientation Orientation

	rules   []Rule
	indexOf map[string]int
}

// Set gives the alternatives of nonterminal nt. If nt already has a rule, its
// alternatives are replaced but it keeps its original position.
func (g *Grammar) Set(nt string, alts []Alternative) {
	if g.indexOf == nil {
		g.indexOf = map[string]int{}
	}

	copied := make([]Alternative, len(alts))
	copy(copied, alts)

	if idx, ok := g.indexOf[nt]; ok {
		g.rules[idx].Alternatives = copied
		return
	}

	g.indexOf[nt] = len(g.rules)
	g.rules = append(g.rules, Rule{NonTerminal: nt, Alternatives: copied})
}

// Rule returns the rule for nonterminal nt. The second return value is false
// if nt has no rule.
func (g Grammar) Rule(nt string) (Rule, bool) {
	idx, ok := g.indexOf[nt]
	if !ok {
		return Rule{}, false
	}
	return g.rules[idx], true
}

// Rules returns all rules in declaration order.
func (g Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// NonTerminals returns the name of every nonterminal with a rule, in
// declaration order.
func (g Grammar) NonTerminals() []string {
	names := make([]string, len(g.rules))
	for i := range g.rules {
		names[i] = g.rules[i].NonTerminal
	}
	return names
}

// StartSymbol returns the first declared nonterminal, or "" for an empty
// grammar.
func (g Grammar) StartSymbol() string {
	if len(g.rules) < 1 {
		return ""
	}
	return g.rules[0].NonTerminal
}

// Len returns the number of rules.
func (g Grammar) Len() int {
	return len(g.rules)
}

// Undefined returns every nonterminal that is referenced by some alternative
// but has no rule of its own, in the order first referenced.
func (g Grammar) Undefined() []string {
	var undef []string
	seen := map[string]bool{}

	for _, r := range g.rules {
		for _, alt := range r.Alternatives {
			ref := alt.NonTerminal
			if ref == "" || seen[ref] {
				continue
			}
			seen[ref] = true
			if _, ok := g.indexOf[ref]; !ok {
				undef = append(undef, ref)
			}
		}
	}

	return undef
}

// Alphabet returns every terminal symbol used in the grammar.
func (g Grammar) Alphabet() Alphabet {
	alpha := NewAlphabet()
	for _, r := range g.rules {
		for _, alt := range r.Alternatives {
			alpha.Add(alt.Terminals()...)
		}
	}
	return alpha
}

func (g Grammar) String() string {
	var sb strings.Builder

	for i := range g.rules {
		sb.WriteString(g.rules[i].String())
		sb.WriteRune('\n')
	}

	return sb.String()
}
