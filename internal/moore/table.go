// Package moore contains the Moore-style transition table of an automaton
// and its output as a delimited text file.
package moore

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/grammoore/internal/automaton"
	"github.com/dekarrin/rosed"
)

// Table is a transition table with one row per input symbol and one column
// per state. Each cell lists every state reached from the column's state on
// the row's symbol; a cell with more than one entry is a non-deterministic
// transition. Each state also has an output, which is non-empty only for
// accepting states.
type Table struct {
	symbols []string
	states  []string
	outputs map[string]string
	next    map[string]map[string][]string
}

// New creates a Table from an NFA. Rows are given in the order of symbols and
// columns in the order the NFA's states were added. Accepting states have
// acceptMarker as their output.
func New[E any](nfa automaton.NFA[E], symbols []string, acceptMarker string) Table {
	t := Table{
		symbols: make([]string, len(symbols)),
		states:  nfa.States(),
		outputs: map[string]string{},
		next:    map[string]map[string][]string{},
	}
	copy(t.symbols, symbols)

	for _, s := range t.states {
		if nfa.IsAccepting(s) {
			t.outputs[s] = acceptMarker
		} else {
			t.outputs[s] = ""
		}
	}

	for _, sym := range t.symbols {
		t.next[sym] = map[string][]string{}
		for _, s := range t.states {
			t.next[sym][s] = nfa.Next(s, sym)
		}
	}

	return t
}

// FromMachine creates a Table from a Machine built from a grammar, with one row
// per symbol of the Machine's alphabet.
func FromMachine(m automaton.Machine, acceptMarker string) Table {
	return New(m.NFA, m.Alphabet.Symbols(), acceptMarker)
}

// Symbols returns the input symbol of each row.
func (t Table) Symbols() []string {
	syms := make([]string, len(t.symbols))
	copy(syms, t.symbols)
	return syms
}

// States returns the state of each column.
func (t Table) States() []string {
	states := make([]string, len(t.states))
	copy(states, t.states)
	return states
}

// Output returns the output of state.
func (t Table) Output(state string) string {
	return t.outputs[state]
}

// Next returns the states reached from state on input sym.
func (t Table) Next(sym, state string) []string {
	return t.next[sym][state]
}

// Rows returns the full table as rows of fields: the output row, then the
// state row, then a row for each symbol. Every row has one more field than
// there are states; the first field is the row heading.
func (t Table) Rows() [][]string {
	outRow := []string{""}
	stateRow := []string{""}
	for _, s := range t.states {
		outRow = append(outRow, t.outputs[s])
		stateRow = append(stateRow, s)
	}

	rows := [][]string{outRow, stateRow}

	for _, sym := range t.symbols {
		row := []string{sym}
		for _, s := range t.states {
			row = append(row, strings.Join(t.next[sym][s], ","))
		}
		rows = append(rows, row)
	}

	return rows
}

// String shows the table with borders for reading on a console.
func (t Table) String() string {
	return rosed.Edit("").
		InsertTableOpts(0, t.Rows(), 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}

// Show writes the String form of the table to w.
func (t Table) Show(w io.Writer) error {
	if _, err := io.WriteString(w, t.String()+"\n"); err != nil {
		return fmt.Errorf("could not write table: %w", err)
	}
	return nil
}
