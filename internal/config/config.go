// Package config contains the settings that control how a grammar is
// converted and how the resulting table is written, along with loading of
// those settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

const (
	OrientationAuto  = "auto"
	OrientationLeft  = "left"
	OrientationRight = "right"
)

var (
	// ErrInvalidDelimiter is returned by Validate when the delimiter is not
	// exactly one character or is one that cannot separate fields.
	ErrInvalidDelimiter = errors.New("delimiter must be a single character other than a quote, comma, or line break")

	// ErrInvalidOrientation is returned by Validate when the orientation is
	// not one of "auto", "left", or "right".
	ErrInvalidOrientation = errors.New("orientation must be one of 'auto', 'left', or 'right'")

	// ErrEmptyMarker is returned by Validate when the acceptance marker is
	// empty, which would leave the accepting state unmarked.
	ErrEmptyMarker = errors.New("accept marker must not be empty")
)

// Options is the full set of settings for a conversion. The zero value is not
// valid; start from Default.
type Options struct {
	// StatePrefix is put in front of the index of each state to form its
	// label.
	StatePrefix string `toml:"state_prefix"`

	// AcceptMarker is the output written in the first header row for the
	// accepting state.
	AcceptMarker string `toml:"accept_marker"`

	// Delimiter separates fields in the written table.
	Delimiter string `toml:"delimiter"`

	// CRLF gives whether rows end in "\r\n" instead of "\n".
	CRLF bool `toml:"crlf"`

	// Strict makes an unparseable trailing record an error instead of being
	// dropped with a warning.
	Strict bool `toml:"strict"`

	// Orientation forces the grammar to be read as left- or right-linear. If
	// set to "auto", the orientation is detected.
	Orientation string `toml:"orientation"`

	// Debug enables logging of each intermediate result of the conversion.
	Debug bool `toml:"debug"`
}

// Default returns the Options that reproduce the standard output format.
func Default() Options {
	return Options{
		StatePrefix:  "q",
		AcceptMarker: "F",
		Delimiter:    ";",
		CRLF:         true,
		Orientation:  OrientationAuto,
	}
}

// Load reads Options from the TOML file at path. Any key not present in the
// file keeps its value from Default. The returned Options are validated.
func Load(path string) (Options, error) {
	opts := Default()

	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("decode %q: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i := range undec {
			keys[i] = undec[i].String()
		}
		return Options{}, fmt.Errorf("decode %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	opts.Orientation = strings.ToLower(opts.Orientation)

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("%q: %w", path, err)
	}

	return opts, nil
}

// DelimiterRune returns the Delimiter as a rune. It must only be called on
// validated Options.
func (o Options) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(o.Delimiter)
	return r
}

// Validate returns an error if any field of o holds a value that cannot be
// used for a conversion.
func (o Options) Validate() error {
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return ErrInvalidDelimiter
	}
	switch o.DelimiterRune() {
	case '"', ',', '\r', '\n', utf8.RuneError:
		// comma is reserved for joining the next-states within a cell
		return ErrInvalidDelimiter
	}

	if o.AcceptMarker == "" {
		return ErrEmptyMarker
	}

	switch o.Orientation {
	case OrientationAuto, OrientationLeft, OrientationRight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, o.Orientation)
	}

	return nil
}
