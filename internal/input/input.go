// Package input contains the line sources that grammar text is read from,
// either a file or stream read directly or a terminal read through GNU
// readline style line editing.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StdinPath is the path that selects standard input instead of a file.
const StdinPath = "-"

// LineReader is a source of text lines. ReadLine returns io.EOF once there
// are no more lines.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectLineReader implements LineReader and reads lines from any generic
// input stream directly. Input is decoded as UTF-8; a leading byte order mark
// is removed.
//
// DirectLineReader should not be used directly; instead, create one with
// [NewDirectReader] or [Open].
type DirectLineReader struct {
	r      *bufio.Reader
	closer io.Closer
}

// InteractiveLineReader implements LineReader and reads lines from stdin
// using a go implementation of the GNU Readline library. This keeps input
// clear of typing and editing escape sequences. It should in general only be
// used when directly connected to a TTY.
//
// InteractiveLineReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveLineReader struct {
	rl *readline.Instance
}

// NewDirectReader creates a new DirectLineReader on the provided reader. If r
// is also an io.Closer, it is closed when the DirectLineReader is.
func NewDirectReader(r io.Reader) *DirectLineReader {
	dlr := &DirectLineReader{
		r: decodeUTF8(r),
	}
	if c, ok := r.(io.Closer); ok {
		dlr.closer = c
	}
	return dlr
}

// NewInteractiveReader creates a new InteractiveLineReader and initializes
// readline. The returned reader must have Close() called on it before
// disposal to properly teardown readline resources.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveLineReader{rl: rl}, nil
}

// Open opens the line source at path. If path is StdinPath, standard input is
// used, through readline if it is attached to a terminal.
func Open(path string) (LineReader, error) {
	if path == StdinPath {
		if readline.DefaultIsTerminal() {
			return NewInteractiveReader("grammar> ")
		}
		// not via NewDirectReader; stdin must stay open
		return &DirectLineReader{r: decodeUTF8(os.Stdin)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewDirectReader(f), nil
}

func decodeUTF8(r io.Reader) *bufio.Reader {
	return bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
}

// ReadLine reads the next line with any line ending removed. The final line
// need not end with a line break.
func (dlr *DirectLineReader) ReadLine() (string, error) {
	line, err := dlr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Close closes the underlying stream if it is closable.
func (dlr *DirectLineReader) Close() error {
	if dlr.closer != nil {
		return dlr.closer.Close()
	}
	return nil
}

// ReadLine reads the next line typed at the terminal. An interrupt (Ctrl-C) is
// treated the same as end of input.
func (ilr *InteractiveLineReader) ReadLine() (string, error) {
	line, err := ilr.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return line, nil
}

// Close cleans up readline resources.
func (ilr *InteractiveLineReader) Close() error {
	return ilr.rl.Close()
}

// ReadAll reads every remaining line from lr.
func ReadAll(lr LineReader) ([]string, error) {
	var lines []string
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

// ReadFile opens the line source at path, reads all of its lines, and closes
// it.
func ReadFile(path string) ([]string, error) {
	lr, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer lr.Close()

	return ReadAll(lr)
}
