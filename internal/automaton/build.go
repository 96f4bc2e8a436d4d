// Package automaton builds finite automata from regular grammars and holds
// the NFA type they are built as.
package automaton

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dekarrin/grammoore/internal/grammar"
)

// ErrUndefinedNonTerminal is returned when a production refers to a
// nonterminal that has no production of its own.
var ErrUndefinedNonTerminal = errors.New("nonterminal is referenced but never defined")

// Machine is the automaton built from a grammar, together with the mapping of
// grammar symbols to its states and the input alphabet it was built over.
type Machine struct {
	NFA      NFA[LogicalName]
	States   StateMap
	Alphabet grammar.Alphabet
}

// Build builds the automaton accepting the language of g. The orientation of g
// decides how productions become transitions; see FromLeftLinear and
// FromRightLinear. States are labeled with statePrefix followed by their
// index.
func Build(g grammar.Grammar, statePrefix string) (Machine, error) {
	switch g.Orientation {
	case grammar.LeftLinear:
		return FromLeftLinear(g, statePrefix)
	case grammar.RightLinear:
		return FromRightLinear(g, statePrefix)
	default:
		return Machine{}, fmt.Errorf("cannot build automaton for grammar of %s orientation", g.Orientation)
	}
}

// FromLeftLinear builds the automaton for a left-linear grammar. Its states
// are the synthetic Start state followed by one state per nonterminal, and the
// state of the grammar's start symbol is the only accepting state.
//
// Derivations of a left-linear grammar are read right to left, so for a
// production Y -> <X> t the transition on t goes from X to Y, and for a
// production Y -> t it goes from Start to Y.
func FromLeftLinear(g grammar.Grammar, statePrefix string) (Machine, error) {
	if g.Len() < 1 {
		return Machine{}, grammar.ErrNoRules
	}
	if err := checkDefined(g); err != nil {
		return Machine{}, err
	}

	names := []LogicalName{Start}
	for _, nt := range g.NonTerminals() {
		names = append(names, NonTerminal(nt))
	}

	m := newMachine(g, statePrefix, names, NonTerminal(g.StartSymbol()))
	m.NFA.Start = m.States.MustLabel(Start)

	m.addTransitions(g, func(owner string, alt grammar.Alternative) (from, to LogicalName) {
		from = Start
		if alt.NonTerminal != "" {
			from = NonTerminal(alt.NonTerminal)
		}
		return from, NonTerminal(owner)
	})

	return m, nil
}

// FromRightLinear builds the automaton for a right-linear grammar. Its states
// are one state per nonterminal followed by the synthetic Final state, which
// is the only accepting state. The state of the grammar's start symbol is the
// initial state.
//
// For a production Y -> t <X> the transition on t goes from Y to X, and for a
// production Y -> t it goes from Y to Final.
func FromRightLinear(g grammar.Grammar, statePrefix string) (Machine, error) {
	if err := checkDefined(g); err != nil {
		return Machine{}, err
	}

	var names []LogicalName
	for _, nt := range g.NonTerminals() {
		names = append(names, NonTerminal(nt))
	}
	names = append(names, Final)

	m := newMachine(g, statePrefix, names, Final)
	m.NFA.Start = m.States.MustLabel(names[0])

	m.addTransitions(g, func(owner string, alt grammar.Alternative) (from, to LogicalName) {
		to = Final
		if alt.NonTerminal != "" {
			to = NonTerminal(alt.NonTerminal)
		}
		return NonTerminal(owner), to
	})

	return m, nil
}

func newMachine(g grammar.Grammar, statePrefix string, names []LogicalName, accept LogicalName) Machine {
	m := Machine{
		States:   AssignStates(statePrefix, names...),
		Alphabet: g.Alphabet(),
	}
	m.NFA.Epsilon = grammar.Epsilon

	for _, n := range m.States.Names() {
		label := m.States.MustLabel(n)
		m.NFA.AddState(label, n == accept)
		m.NFA.SetValue(label, n)
	}

	return m
}

// addTransitions adds a transition for every pairing of an alphabet symbol
// with an alternative that uses it. Symbols are visited in alphabet order and
// alternatives in grammar order, so each state's transitions on a symbol are
// listed in the order of the productions that made them.
func (m *Machine) addTransitions(g grammar.Grammar, endpoints func(owner string, alt grammar.Alternative) (from, to LogicalName)) {
	rules := g.Rules()

	for _, sym := range m.Alphabet.Symbols() {
		for _, r := range rules {
			for _, alt := range r.Alternatives {
				if !alt.HasTerminal(sym) {
					continue
				}
				from, to := endpoints(r.NonTerminal, alt)
				m.NFA.AddTransition(m.States.MustLabel(from), sym, m.States.MustLabel(to))
			}
		}
	}
}

func checkDefined(g grammar.Grammar) error {
	undef := g.Undefined()
	if len(undef) > 0 {
		quoted := make([]string, len(undef))
		for i := range undef {
			quoted[i] = "<" + undef[i] + ">"
		}
		return fmt.Errorf("%w: %s", ErrUndefinedNonTerminal, strings.Join(quoted, ", "))
	}
	return nil
}
