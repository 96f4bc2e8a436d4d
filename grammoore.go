// Package grammoore converts regular grammars into Moore-style transition
// tables. It ties together parsing the grammar, building its automaton, and
// writing the automaton's table.
package grammoore

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dekarrin/grammoore/internal/automaton"
	"github.com/dekarrin/grammoore/internal/config"
	"github.com/dekarrin/grammoore/internal/gmerrors"
	"github.com/dekarrin/grammoore/internal/grammar"
	"github.com/dekarrin/grammoore/internal/input"
	"github.com/dekarrin/grammoore/internal/moore"
)

// Converter runs conversions of grammars to transition tables using a fixed
// set of options.
type Converter struct {
	opts   config.Options
	logger *log.Logger
}

// Result holds everything produced by a single conversion.
type Result struct {
	// Grammar is the grammar as it was parsed.
	Grammar grammar.Grammar

	// Dropped is the text of a trailing record that never formed a complete
	// production and was left out of Grammar. It is empty if there was none.
	Dropped string

	// Machine is the automaton built from Grammar.
	Machine automaton.Machine

	// Table is the transition table of Machine.
	Table moore.Table
}

// New creates a Converter that uses the given options. Diagnostics are logged
// to logger; if it is nil, they are discarded.
func New(opts config.Options, logger *log.Logger) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Converter{opts: opts, logger: logger}, nil
}

// Format returns the layout the Converter writes tables in.
func (c *Converter) Format() moore.Format {
	return moore.Format{
		Delimiter: c.opts.DelimiterRune(),
		CRLF:      c.opts.CRLF,
	}
}

// Convert parses the given lines of production text and builds the transition
// table of the grammar they give.
func (c *Converter) Convert(lines []string) (Result, error) {
	var res Result

	if c.opts.Orientation == config.OrientationAuto {
		res.Grammar, res.Dropped = grammar.ParseDetect(lines)
	} else {
		o, err := grammar.ParseOrientation(c.opts.Orientation)
		if err != nil {
			return res, err
		}
		res.Grammar, res.Dropped = grammar.Parse(lines, o)
	}

	if res.Dropped != "" {
		if c.opts.Strict {
			return res, fmt.Errorf("%w: %q", grammar.ErrDroppedRecord, res.Dropped)
		}
		c.logger.Printf("WARN  Ignoring incomplete production at end of input: %q", res.Dropped)
	}

	c.debugf("Parsed %s grammar with %d rules:\n%s", res.Grammar.Orientation, res.Grammar.Len(), res.Grammar)

	var err error
	res.Machine, err = automaton.Build(res.Grammar, c.opts.StatePrefix)
	if err != nil {
		return res, fmt.Errorf("build automaton: %w", err)
	}

	c.debugf("States: %s", res.Machine.States)
	c.debugf("Input symbols: %s", res.Machine.Alphabet)
	c.debugf("Transitions: %s", res.Machine.NFA)

	res.Table = moore.FromMachine(res.Machine, c.opts.AcceptMarker)

	return res, nil
}

// ConvertFile reads the grammar in the file at inPath, converts it, and writes
// the transition table to the file at outPath. Either path may be
// input.StdinPath to use stdin or stdout respectively.
func (c *Converter) ConvertFile(inPath, outPath string) (Result, error) {
	lines, err := input.ReadFile(inPath)
	if err != nil {
		return Result{}, gmerrors.Wrapf(err, "could not read grammar from %q", inPath)
	}

	res, err := c.Convert(lines)
	if err != nil {
		return res, gmerrors.Wrapf(err, "could not convert grammar in %q", inPath)
	}

	if outPath == input.StdinPath {
		err = moore.Write(os.Stdout, res.Table, c.Format())
	} else {
		err = c.writeFile(outPath, res.Table)
	}
	if err != nil {
		return res, gmerrors.Wrapf(err, "could not write table to %q", outPath)
	}

	c.logger.Printf("INFO  Wrote %d states and %d input symbols to %s", len(res.Table.States()), len(res.Table.Symbols()), outPath)

	return res, nil
}

func (c *Converter) writeFile(path string, t moore.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return moore.Write(f, t, c.Format())
}

func (c *Converter) debugf(format string, a ...interface{}) {
	if !c.opts.Debug {
		return
	}
	msg := fmt.Sprintf(format, a...)
	c.logger.Printf("DEBUG %s", strings.TrimRight(msg, "\n"))
}
