package grammoore

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/dekarrin/grammoore/internal/automaton"
	"github.com/dekarrin/grammoore/internal/config"
	"github.com/dekarrin/grammoore/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGrammar(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "grammar.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func Test_Converter_ConvertFile(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		opts   func(o *config.Options)
		expect string
	}{
		{
			name:   "left-linear",
			input:  "<A> -> a | <A> b\n",
			expect: ";;F\r\n;q0;q1\r\na;q1;\r\nb;;q1\r\n",
		},
		{
			name:   "right-linear",
			input:  "<A> -> a | b <A>\n",
			expect: ";;F\r\n;q0;q1\r\na;q1;\r\nb;q0;\r\n",
		},
		{
			name: "multi-line right-linear with epsilon",
			input: "<S> -> a <S> |\n" +
				"       b <T>\n" +
				"\n" +
				"<T> -> ε\n",
			expect: ";;;F\r\n;q0;q1;q2\r\na;q0;;\r\nb;q1;;\r\nε;;q2;\r\n",
		},
		{
			name:  "options change labels and layout",
			input: "<A> -> a | <A> b\n",
			opts: func(o *config.Options) {
				o.StatePrefix = "S"
				o.AcceptMarker = "accept"
				o.Delimiter = "\t"
				o.CRLF = false
			},
			expect: "\t\taccept\n\tS0\tS1\na\tS1\t\nb\t\tS1\n",
		},
		{
			name:  "forced left-linear orientation",
			input: "<A> -> a | b\n",
			opts: func(o *config.Options) {
				o.Orientation = config.OrientationLeft
			},
			expect: ";;F\r\n;q0;q1\r\na;q1;\r\nb;q1;\r\n",
		},
		{
			name:   "detected right-linear orientation for same text",
			input:  "<A> -> a | b\n",
			expect: ";;F\r\n;q0;q1\r\na;q1;\r\nb;q1;\r\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			opts := config.Default()
			if tc.opts != nil {
				tc.opts(&opts)
			}
			conv, err := New(opts, nil)
			if !assert.NoError(err) {
				return
			}

			inPath := writeGrammar(t, tc.input)
			outPath := filepath.Join(t.TempDir(), "table.csv")

			_, err = conv.ConvertFile(inPath, outPath)
			if !assert.NoError(err) {
				return
			}

			actual, err := os.ReadFile(outPath)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, string(actual))
		})
	}
}

func Test_Converter_ConvertFile_Deterministic(t *testing.T) {
	assert := assert.New(t)

	conv, err := New(config.Default(), nil)
	require.NoError(t, err)

	inPath := writeGrammar(t, "<S> -> z <A> | y <B> | x\n<A> -> w <S> | v <B>\n<B> -> u <A> | t | s <S>\n")
	dir := t.TempDir()

	var outputs [][]byte
	for _, name := range []string{"first.csv", "second.csv", "third.csv"} {
		outPath := filepath.Join(dir, name)
		_, err := conv.ConvertFile(inPath, outPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		outputs = append(outputs, data)
	}

	assert.Equal(outputs[0], outputs[1])
	assert.Equal(outputs[0], outputs[2])
	assert.Contains(string(outputs[0]), "z;q1;;;\r\n")
}

func Test_Converter_Convert_DroppedRecord(t *testing.T) {
	lines := []string{"<A> -> a | <A> b", "<B> -> not a production"}

	t.Run("lenient", func(t *testing.T) {
		assert := assert.New(t)

		var logs bytes.Buffer
		conv, err := New(config.Default(), log.New(&logs, "", 0))
		require.NoError(t, err)

		res, err := conv.Convert(lines)
		if !assert.NoError(err) {
			return
		}

		assert.Equal("<B> -> not a production", res.Dropped)
		assert.Equal([]string{"A"}, res.Grammar.NonTerminals())
		assert.Contains(logs.String(), "WARN  Ignoring incomplete production")
	})

	t.Run("strict", func(t *testing.T) {
		opts := config.Default()
		opts.Strict = true
		conv, err := New(opts, nil)
		require.NoError(t, err)

		_, err = conv.Convert(lines)
		assert.ErrorIs(t, err, grammar.ErrDroppedRecord)
	})
}

func Test_Converter_Convert_DebugLogging(t *testing.T) {
	assert := assert.New(t)

	var logs bytes.Buffer
	opts := config.Default()
	opts.Debug = true
	conv, err := New(opts, log.New(&logs, "", 0))
	require.NoError(t, err)

	_, err = conv.Convert([]string{"<A> -> a | b <A>"})
	if !assert.NoError(err) {
		return
	}

	out := logs.String()
	assert.Contains(out, "DEBUG Parsed right-linear grammar with 1 rules:\n<A> -> a | b <A>\n")
	assert.Contains(out, "DEBUG States: {<A>: q0, (final): q1}\n")
	assert.Contains(out, "DEBUG Input symbols: {a, b}\n")
	assert.Contains(out, "DEBUG Transitions: <START: \"q0\"")
}

func Test_Converter_Convert_Errors(t *testing.T) {
	conv, err := New(config.Default(), nil)
	require.NoError(t, err)

	_, err = conv.Convert([]string{"<S> -> a <Missing>"})
	assert.ErrorIs(t, err, automaton.ErrUndefinedNonTerminal)

	_, err = conv.ConvertFile(filepath.Join(t.TempDir(), "nope.txt"), filepath.Join(t.TempDir(), "out.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_New_InvalidOptions(t *testing.T) {
	opts := config.Default()
	opts.Delimiter = ","

	_, err := New(opts, nil)
	assert.ErrorIs(t, err, config.ErrInvalidDelimiter)
}
