package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name        string
		lines       []string
		orientation Orientation
		expect      []Rule
		dropped     string
	}{
		{
			name:        "single left-linear rule",
			lines:       []string{"<A> -> a | <A> b"},
			orientation: LeftLinear,
			expect: []Rule{
				{NonTerminal: "A", Alternatives: []Alternative{
					{Text: "a"},
					{Text: "<A> b", NonTerminal: "A"},
				}},
			},
		},
		{
			name:        "single right-linear rule",
			lines:       []string{"<A> -> a | b <A>"},
			orientation: RightLinear,
			expect: []Rule{
				{NonTerminal: "A", Alternatives: []Alternative{
					{Text: "a"},
					{Text: "b <A>", NonTerminal: "A"},
				}},
			},
		},
		{
			name: "record spread over lines with blank separators",
			lines: []string{
				"<S> ->",
				"  <S> a |",
				"",
				"  b",
				"",
				"<T> -> <S> c",
			},
			orientation: LeftLinear,
			expect: []Rule{
				{NonTerminal: "S", Alternatives: []Alternative{
					{Text: "<S> a", NonTerminal: "S"},
					{Text: "b"},
				}},
				{NonTerminal: "T", Alternatives: []Alternative{
					{Text: "<S> c", NonTerminal: "S"},
				}},
			},
		},
		{
			name: "redeclared nonterminal keeps first position",
			lines: []string{
				"<S> -> a",
				"<T> -> b",
				"<S> -> c | <T> d",
			},
			orientation: LeftLinear,
			expect: []Rule{
				{NonTerminal: "S", Alternatives: []Alternative{
					{Text: "c"},
					{Text: "<T> d", NonTerminal: "T"},
				}},
				{NonTerminal: "T", Alternatives: []Alternative{
					{Text: "b"},
				}},
			},
		},
		{
			name: "unmatched trailing record is dropped",
			lines: []string{
				"<S> -> a | <S> b",
				"<T> -> what is this",
			},
			orientation: LeftLinear,
			expect: []Rule{
				{NonTerminal: "S", Alternatives: []Alternative{
					{Text: "a"},
					{Text: "<S> b", NonTerminal: "S"},
				}},
			},
			dropped: "<T> -> what is this",
		},
		{
			name:        "right-linear text does not match left pattern",
			lines:       []string{"<S> -> a <S> | b"},
			orientation: LeftLinear,
			dropped:     "<S> -> a <S> | b",
		},
		{
			name:        "epsilon and non-ascii names",
			lines:       []string{"<Старт> -> ε | x <Старт>"},
			orientation: RightLinear,
			expect: []Rule{
				{NonTerminal: "Старт", Alternatives: []Alternative{
					{Text: "ε"},
					{Text: "x <Старт>", NonTerminal: "Старт"},
				}},
			},
		},
		{
			name:        "no input",
			orientation: RightLinear,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, dropped := Parse(tc.lines, tc.orientation)

			assert.Equal(tc.orientation, actual.Orientation)
			assert.Equal(tc.dropped, dropped)
			if len(tc.expect) == 0 {
				assert.Empty(actual.Rules())
				return
			}
			assert.Equal(tc.expect, actual.Rules())
		})
	}
}

func Test_ParseDetect(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		expect Orientation
	}{
		{
			name:   "left-linear with reference",
			lines:  []string{"<A> -> a | <A> b"},
			expect: LeftLinear,
		},
		{
			name:   "right-linear with reference",
			lines:  []string{"<A> -> a | b <A>"},
			expect: RightLinear,
		},
		{
			name:   "only single bare symbols is right-linear",
			lines:  []string{"<A> -> a | b", "<B> -> c"},
			expect: RightLinear,
		},
		{
			name:   "single bare symbol is right-linear",
			lines:  []string{"<A> -> ε"},
			expect: RightLinear,
		},
		{
			name:   "left form in a later rule",
			lines:  []string{"<A> -> a", "<B> -> <A> b"},
			expect: LeftLinear,
		},
		{
			name:   "empty input is right-linear",
			expect: RightLinear,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, _ := ParseDetect(tc.lines)

			assert.Equal(t, tc.expect, actual.Orientation)
		})
	}
}

func Test_ParseDetect_ReparsesRightLinear(t *testing.T) {
	assert := assert.New(t)

	g, dropped := ParseDetect([]string{"<S> -> x <S> | y <T>", "<T> -> z"})

	assert.Equal("", dropped)
	assert.Equal([]string{"S", "T"}, g.NonTerminals())

	s, _ := g.Rule("S")
	assert.Equal("S", s.Alternatives[0].NonTerminal)
	assert.Equal("T", s.Alternatives[1].NonTerminal)
}

func Test_ParseAlternative(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		orientation Orientation
		expectRef   string
		expectTerms []string
	}{
		{
			name:        "left reference",
			body:        " <A> b ",
			orientation: LeftLinear,
			expectRef:   "A",
			expectTerms: []string{"b"},
		},
		{
			name:        "right reference",
			body:        "b <A>",
			orientation: RightLinear,
			expectRef:   "A",
			expectTerms: []string{"b"},
		},
		{
			name:        "reference on wrong side is not taken",
			body:        "<A> b",
			orientation: RightLinear,
			expectTerms: []string{"b"},
		},
		{
			name:        "bare terminal",
			body:        "a",
			orientation: LeftLinear,
			expectTerms: []string{"a"},
		},
		{
			name:        "terminal that is part of reference name is not a terminal",
			body:        "<ab> b",
			orientation: LeftLinear,
			expectRef:   "ab",
			expectTerms: []string{"b"},
		},
		{
			name:        "half-bracketed words are not terminals",
			body:        "A> b <c",
			orientation: LeftLinear,
			expectTerms: []string{"b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := ParseAlternative(tc.body, tc.orientation)

			assert.Equal(tc.expectRef, actual.NonTerminal)
			assert.Equal(tc.expectTerms, actual.Terminals())
		})
	}
}

func Test_Alternative_HasTerminal(t *testing.T) {
	assert := assert.New(t)

	alt := ParseAlternative("<Sa> b", LeftLinear)

	assert.True(alt.HasTerminal("b"))
	assert.False(alt.HasTerminal("a"), "a is part of the reference name only")
	assert.False(alt.HasTerminal("S"))
}

func Test_Grammar_Alphabet(t *testing.T) {
	assert := assert.New(t)

	g, _ := Parse([]string{
		"<S> -> b | <S> a | <T> b",
		"<T> -> ε | <S> c",
	}, LeftLinear)

	alpha := g.Alphabet()

	assert.Equal([]string{"b", "a", "ε", "c"}, alpha.Symbols())
	assert.Equal(4, alpha.Len())
	assert.True(alpha.Has("ε"))
	assert.False(alpha.Has("S"))
	assert.Equal("{b, a, ε, c}", alpha.String())
}

func Test_Grammar_Undefined(t *testing.T) {
	g, _ := Parse([]string{
		"<S> -> a <X> | b <T> | c <X>",
		"<T> -> d <Y>",
	}, RightLinear)

	assert.Equal(t, []string{"X", "Y"}, g.Undefined())
}

func Test_Grammar_String(t *testing.T) {
	g, _ := Parse([]string{"<S> -> a  |  <S>   b", "<T> -> c"}, LeftLinear)

	assert.Equal(t, "<S> -> a | <S>   b\n<T> -> c\n", g.String())
	assert.Equal(t, "S", g.StartSymbol())
}

func Test_ParseOrientation(t *testing.T) {
	assert := assert.New(t)

	o, err := ParseOrientation("LEFT")
	assert.NoError(err)
	assert.Equal(LeftLinear, o)

	o, err = ParseOrientation("right-linear")
	assert.NoError(err)
	assert.Equal(RightLinear, o)

	_, err = ParseOrientation("up")
	assert.Error(err)
}

func Test_Alphabet_ZeroValue(t *testing.T) {
	var alpha Alphabet

	assert.Equal(t, 0, alpha.Len())
	assert.False(t, alpha.Has("a"))
	assert.Nil(t, alpha.Symbols())
}
