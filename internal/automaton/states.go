package automaton

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Marker tags a LogicalName that stands for a state added for the automaton
// rather than for a nonterminal of the grammar.
type Marker int

const (
	NoMarker Marker = iota
	StartMarker
	FinalMarker
)

// LogicalName is what a state of a grammar's automaton stands for: either a
// nonterminal, or one of the synthetic start and final states. Because the
// markers are tagged, a nonterminal can never be mistaken for one of them no
// matter what it is called.
type LogicalName struct {
	NonTerminal string
	Marker      Marker
}

var (
	// Start is the synthetic initial state of a left-linear grammar's
	// automaton.
	Start = LogicalName{Marker: StartMarker}

	// Final is the synthetic accepting state of a right-linear grammar's
	// automaton.
	Final = LogicalName{Marker: FinalMarker}
)

// NonTerminal returns the LogicalName for the nonterminal with the given
// name.
func NonTerminal(name string) LogicalName {
	return LogicalName{NonTerminal: name}
}

func (ln LogicalName) String() string {
	switch ln.Marker {
	case StartMarker:
		return "(start)"
	case FinalMarker:
		return "(final)"
	default:
		return "<" + ln.NonTerminal + ">"
	}
}

// StateMap assigns a state label to each LogicalName. Labels are given in the
// order names were assigned and no two names share one.
//
// StateMap should not be created directly; use AssignStates.
type StateMap struct {
	m *linkedhashmap.Map
}

// AssignStates creates a StateMap in which the i-th distinct name of names is
// given the label prefix followed by i. A name that repeats an earlier one is
// skipped and does not use up an index.
func AssignStates(prefix string, names ...LogicalName) StateMap {
	sm := StateMap{m: linkedhashmap.New()}

	for _, n := range names {
		if _, exists := sm.m.Get(n); exists {
			continue
		}
		sm.m.Put(n, fmt.Sprintf("%s%d", prefix, sm.m.Size()))
	}

	return sm
}

// Label returns the label assigned to name. The second return value is false
// if name was never assigned one.
func (sm StateMap) Label(name LogicalName) (string, bool) {
	if sm.m == nil {
		return "", false
	}
	v, ok := sm.m.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// MustLabel is Label but panics if name has no label.
func (sm StateMap) MustLabel(name LogicalName) string {
	label, ok := sm.Label(name)
	if !ok {
		panic(fmt.Sprintf("no state assigned to %s", name))
	}
	return label
}

// Names returns every assigned name in assignment order.
func (sm StateMap) Names() []LogicalName {
	if sm.m == nil {
		return nil
	}
	keys := sm.m.Keys()
	names := make([]LogicalName, len(keys))
	for i := range keys {
		names[i] = keys[i].(LogicalName)
	}
	return names
}

// Labels returns every assigned label in assignment order.
func (sm StateMap) Labels() []string {
	if sm.m == nil {
		return nil
	}
	vals := sm.m.Values()
	labels := make([]string, len(vals))
	for i := range vals {
		labels[i] = vals[i].(string)
	}
	return labels
}

// Len returns the number of assigned names.
func (sm StateMap) Len() int {
	if sm.m == nil {
		return 0
	}
	return sm.m.Size()
}

func (sm StateMap) String() string {
	names := sm.Names()
	pairs := make([]string, len(names))
	for i := range names {
		pairs[i] = fmt.Sprintf("%s: %s", names[i], sm.MustLabel(names[i]))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
