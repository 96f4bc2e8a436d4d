package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Alphabet is a set of terminal symbols. Symbols are kept in the order they
// were first added so that every traversal of the same Alphabet, and of any
// Alphabet built from the same grammar, gives the same order.
//
// Alphabet should not be created directly; use NewAlphabet.
type Alphabet struct {
	set *linkedhashset.Set
}

// NewAlphabet creates an Alphabet holding the given symbols.
func NewAlphabet(symbols ...string) Alphabet {
	alpha := Alphabet{set: linkedhashset.New()}
	alpha.Add(symbols...)
	return alpha
}

// Add adds each symbol not already in the Alphabet.
func (alpha Alphabet) Add(symbols ...string) {
	for _, s := range symbols {
		alpha.set.Add(s)
	}
}

// Has returns whether sym is in the Alphabet.
func (alpha Alphabet) Has(sym string) bool {
	if alpha.set == nil {
		return false
	}
	return alpha.set.Contains(sym)
}

// Len returns the number of symbols.
func (alpha Alphabet) Len() int {
	if alpha.set == nil {
		return 0
	}
	return alpha.set.Size()
}

// Symbols returns the symbols in the order they were added.
func (alpha Alphabet) Symbols() []string {
	if alpha.set == nil {
		return nil
	}

	vals := alpha.set.Values()
	syms := make([]string, len(vals))
	for i := range vals {
		syms[i] = vals[i].(string)
	}
	return syms
}

func (alpha Alphabet) String() string {
	return "{" + strings.Join(alpha.Symbols(), ", ") + "}"
}
