package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/grammoore/internal/util"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// FATransition is a single move out of a state on an input symbol.
type FATransition struct {
	input string
	next  string
}

func (t FATransition) String() string {
	return fmt.Sprintf("=(%s)=> %s", t.input, t.next)
}

// NFAState is a state in an NFA along with every transition out of it. The
// transitions for each input are kept in the order they were added and are
// never merged, even when more than one goes to the same state.
type NFAState[E any] struct {
	name        string
	value       E
	transitions map[string][]FATransition
	accepting   bool
}

func (ns NFAState[E]) Copy() NFAState[E] {
	copied := NFAState[E]{
		name:        ns.name,
		value:       ns.value,
		transitions: make(map[string][]FATransition, len(ns.transitions)),
		accepting:   ns.accepting,
	}

	for k := range ns.transitions {
		trans := make([]FATransition, len(ns.transitions[k]))
		copy(trans, ns.transitions[k])
		copied.transitions[k] = trans
	}

	return copied
}

func (ns NFAState[E]) String() string {
	var moves strings.Builder

	inputs := util.OrderedKeys(ns.transitions)

	for i, input := range inputs {
		var tStrings []string

		for _, t := range ns.transitions[input] {
			tStrings = append(tStrings, t.String())
		}

		sort.Strings(tStrings)

		for tIdx, t := range tStrings {
			moves.WriteString(t)
			if tIdx+1 < len(tStrings) || i+1 < len(inputs) {
				moves.WriteRune(',')
				moves.WriteRune(' ')
			}
		}
	}

	str := fmt.Sprintf("(%s [%s])", ns.name, moves.String())

	if ns.accepting {
		str = "(" + str + ")"
	}

	return str
}

// NFA is a non-deterministic finite automaton whose states each carry a value
// of type E. States are kept in the order they were added.
//
// The zero value is an NFA with no states ready to use.
type NFA[E any] struct {
	states map[string]NFAState[E]
	order  []string
	Start  string

	// Epsilon is the input symbol followed without consuming input when
	// checking whether a string is accepted. If empty, no symbol is.
	Epsilon string
}

// AcceptingStates returns the names of all accepting states.
func (nfa NFA[E]) AcceptingStates() util.StringSet {
	accepting := util.NewStringSet()
	for _, name := range nfa.order {
		if nfa.states[name].accepting {
			accepting.Add(name)
		}
	}

	return accepting
}

// IsAccepting returns whether state is an accepting state.
func (nfa NFA[E]) IsAccepting(state string) bool {
	return nfa.states[state].accepting
}

// Copy returns a duplicate of this NFA.
func (nfa NFA[E]) Copy() NFA[E] {
	copied := NFA[E]{
		Start:   nfa.Start,
		Epsilon: nfa.Epsilon,
		states:  make(map[string]NFAState[E], len(nfa.states)),
		order:   make([]string, len(nfa.order)),
	}

	copy(copied.order, nfa.order)
	for k := range nfa.states {
		copied.states[k] = nfa.states[k].Copy()
	}

	return copied
}

// States returns the name of every state in the order they were added.
func (nfa NFA[E]) States() []string {
	names := make([]string, len(nfa.order))
	copy(names, nfa.order)
	return names
}

// InputSymbols returns the set of all input symbols processed by some
// transition in the NFA.
func (nfa NFA[E]) InputSymbols() util.StringSet {
	symbols := util.NewStringSet()
	for sName := range nfa.states {
		st := nfa.states[sName]

		for a := range st.transitions {
			symbols.Add(a)
		}
	}

	return symbols
}

// Next returns the state reached by every transition from state on input, in
// the order the transitions were added. The same state is listed once for
// each transition that reaches it.
func (nfa NFA[E]) Next(state string, input string) []string {
	var next []string
	for _, t := range nfa.states[state].transitions[input] {
		next = append(next, t.next)
	}
	return next
}

// MOVE returns the set of states reachable with one transition from some state
// in X on input a. Purple dragon book calls this function MOVE(T, a) and it is
// on page 153 as part of algorithm 3.20.
func (nfa NFA[E]) MOVE(X util.StringSet, a string) util.StringSet {
	moves := util.NewStringSet()

	for _, s := range X.Elements() {
		stateItem, ok := nfa.states[s]
		if !ok {
			continue
		}

		for _, t := range stateItem.transitions[a] {
			moves.Add(t.next)
		}
	}

	return moves
}

// EpsilonClosureOfSet gives the set of states reachable from some state in
// X using zero or more ε-moves.
func (nfa NFA[E]) EpsilonClosureOfSet(X util.StringSet) util.StringSet {
	allClosures := util.NewStringSet()

	for _, s := range X.Elements() {
		for c := range nfa.EpsilonClosure(s) {
			allClosures.Add(c)
		}
	}

	return allClosures
}

// EpsilonClosure gives the set of states reachable from state using zero or
// more ε-moves.
func (nfa NFA[E]) EpsilonClosure(s string) util.StringSet {
	if _, ok := nfa.states[s]; !ok {
		return nil
	}

	closure := util.NewStringSet()
	checkingStates := arraystack.New()
	checkingStates.Push(s)

	for !checkingStates.Empty() {
		top, _ := checkingStates.Pop()
		checking := top.(string)

		if closure.Has(checking) {
			// we've already checked it. skip.
			continue
		}

		closure.Add(checking)

		if nfa.Epsilon == "" {
			continue
		}

		for _, move := range nfa.states[checking].transitions[nfa.Epsilon] {
			checkingStates.Push(move.next)
		}
	}

	return closure
}

// Accepts returns whether the NFA accepts the given sequence of input
// symbols.
func (nfa NFA[E]) Accepts(input []string) bool {
	current := nfa.EpsilonClosure(nfa.Start)

	for _, a := range input {
		if current.Empty() {
			return false
		}
		current = nfa.EpsilonClosureOfSet(nfa.MOVE(current, a))
	}

	for s := range current {
		if nfa.states[s].accepting {
			return true
		}
	}
	return false
}

func (nfa NFA[E]) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<START: %q, STATES:", nfa.Start))

	for i, name := range nfa.order {
		sb.WriteString("\n\t")
		sb.WriteString(nfa.states[name].String())

		if i+1 < len(nfa.order) {
			sb.WriteRune(',')
		} else {
			sb.WriteRune('\n')
		}
	}

	sb.WriteRune('>')

	return sb.String()
}

// AddState adds a new state to the NFA. If the state already exists, this has
// no effect.
func (nfa *NFA[E]) AddState(state string, accepting bool) {
	if _, ok := nfa.states[state]; ok {
		// Gr8! We are done.
		return
	}

	newState := NFAState[E]{
		name:        state,
		transitions: make(map[string][]FATransition),
		accepting:   accepting,
	}

	if nfa.states == nil {
		nfa.states = map[string]NFAState[E]{}
	}

	nfa.states[state] = newState
	nfa.order = append(nfa.order, state)
}

func (nfa *NFA[E]) SetValue(state string, v E) {
	s, ok := nfa.states[state]
	if !ok {
		panic(fmt.Sprintf("setting value on non-existing state: %q", state))
	}
	s.value = v
	nfa.states[state] = s
}

func (nfa NFA[E]) GetValue(state string) E {
	s, ok := nfa.states[state]
	if !ok {
		panic(fmt.Sprintf("getting value on non-existing state: %q", state))
	}
	return s.value
}

// AddTransition adds a transition from fromState to toState on input. Both
// states must already exist. A transition that duplicates an existing one is
// still added.
func (nfa *NFA[E]) AddTransition(fromState string, input string, toState string) {
	curFromState, ok := nfa.states[fromState]

	if !ok {
		// Can't let you do that, Starfox
		panic(fmt.Sprintf("add transition from non-existent state %q", fromState))
	}
	if _, ok := nfa.states[toState]; !ok {
		// I'm afraid I can't do that, Dave
		panic(fmt.Sprintf("add transition to non-existent state %q", toState))
	}

	newTransition := FATransition{
		input: input,
		next:  toState,
	}

	curFromState.transitions[input] = append(curFromState.transitions[input], newTransition)
	nfa.states[fromState] = curFromState
}
