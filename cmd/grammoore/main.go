/*
Grammoore converts a left-linear or right-linear regular grammar into the
transition table of an equivalent finite automaton.

It reads the productions of the grammar from INPUT and writes the table to
OUTPUT as semicolon-delimited text. The first row of the table gives the output
of each state, which marks the accepting state; the second row gives the state
labels; each following row gives, for one input symbol, the states reached from
each state on that symbol.

Usage:

	grammoore [flags] INPUT OUTPUT

Productions are written one per record, with alternatives separated by "|":

	<S> -> a | <S> b
	<T> -> ε | <S> c

A record may span several lines and blank lines are ignored. Whether the grammar
is left-linear or right-linear is detected automatically. Either path may be
"-" to use stdin or stdout.

The flags are:

	-v, --version
		Give the current version of grammoore and then exit.

	-c, --config FILE
		Read conversion options from the given TOML file.

	-o, --orientation left|right|auto
		Read the grammar as left-linear or right-linear instead of detecting
		it.

	-s, --show
		Also print the table to stdout as a bordered text table.

	-a, --accepts STRING
		After converting, check whether the automaton accepts STRING, given as
		space-separated input symbols. May be given more than once.

	-d, --debug
		Log the parsed grammar, state assignment, alphabet, and transitions
		to stderr.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dekarrin/grammoore"
	"github.com/dekarrin/grammoore/internal/config"
	"github.com/dekarrin/grammoore/internal/gmerrors"
	"github.com/dekarrin/grammoore/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates an unsuccessful program execution due to the
	// program being invoked incorrectly.
	ExitUsageError

	// ExitConvertError indicates an unsuccessful program execution due to a
	// problem reading, converting, or writing the grammar.
	ExitConvertError
)

var (
	returnCode      = ExitSuccess
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of grammoore and then exit.")
	flagConfig      = pflag.StringP("config", "c", "", "Read conversion options from the given TOML file.")
	flagOrientation = pflag.StringP("orientation", "o", config.OrientationAuto, "Read the grammar as 'left' or 'right' linear, or 'auto' to detect it.")
	flagShow        = pflag.BoolP("show", "s", false, "Also print the table to stdout as a text table.")
	flagAccepts     = pflag.StringArrayP("accepts", "a", nil, "Check whether the automaton accepts the given space-separated symbols.")
	flagDebug       = pflag.BoolP("debug", "d", false, "Log each step of the conversion to stderr.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Usage = usage
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("grammoore %s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) != 2 {
		reportError(gmerrors.Usagef("expected INPUT and OUTPUT arguments but got %d arguments", len(args)))
		return
	}

	opts, err := loadOptions()
	if err != nil {
		reportError(err)
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	conv, err := grammoore.New(opts, logger)
	if err != nil {
		reportError(gmerrors.Usage(err.Error()))
		return
	}

	res, err := conv.ConvertFile(args[0], args[1])
	if err != nil {
		reportError(err)
		return
	}

	if *flagShow {
		if err := res.Table.Show(os.Stdout); err != nil {
			reportError(err)
			return
		}
	}

	for _, s := range *flagAccepts {
		verdict := "rejects"
		if res.Machine.NFA.Accepts(strings.Fields(s)) {
			verdict = "accepts"
		}
		fmt.Printf("%s %q\n", verdict, s)
	}
}

// loadOptions gives the options from the config file if one was given, with
// any flags that were set applied on top.
func loadOptions() (config.Options, error) {
	opts := config.Default()

	if *flagConfig != "" {
		var err error
		opts, err = config.Load(*flagConfig)
		if err != nil {
			return opts, gmerrors.Wrap(err, "could not load config")
		}
	}

	if pflag.Lookup("orientation").Changed {
		opts.Orientation = strings.ToLower(*flagOrientation)
	}
	if *flagDebug {
		opts.Debug = true
	}

	return opts, nil
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", gmerrors.Message(err))

	if gmerrors.IsUsage(err) {
		fmt.Fprintf(os.Stderr, "\n")
		usage()
		returnCode = ExitUsageError
		return
	}
	returnCode      = ExitConvertError
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  grammoore [flags] INPUT OUTPUT\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	pflag.PrintDefaults()
}
