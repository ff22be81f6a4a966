package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// stdinPath is the conventional argument for reading from standard input.
const stdinPath = "-"

// noCleanup is the cleanup returned for inputs that hold no OS resources.
func noCleanup() error { return nil }

// parseOptions builds parser options from the global flags.
func parseOptions() htmlparse.Options {
	return htmlparse.Options{MaxDepth: maxDepth}
}

// lookupEncoding resolves an --encoding flag value to a decoder. A nil
// Encoding with a nil error means the input is already UTF-8 and needs no
// transcoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1, nil
	case "utf-16le", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be", "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// readInput reads the full input named by path, which is a file path or "-"
// for stdin, transcoding to UTF-8 when a decoder is given.
func readInput(path string, enc encoding.Encoding) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if enc != nil {
			decoded, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode stdin: %w", err)
			}
			return decoded, nil
		}
		return data, nil
	}

	if enc == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(transform.NewReader(file, enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return data, nil
}

// loadForest parses the input named by path. UTF-8 files are memory mapped
// and parsed in place; stdin and transcoded inputs are parsed from a fresh
// buffer. The returned cleanup must be called once the forest is no longer
// used.
func loadForest(path string) (*htmlparse.Forest, func() error, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, nil, err
	}

	if enc == nil && path != stdinPath {
		printVerbose("Mapping input: %s\n", path)
		f, done, err := htmlparse.OpenFile(path, parseOptions())
		if err != nil {
			return nil, nil, describeFileError(path, err)
		}
		return f, done, nil
	}

	printVerbose("Reading input: %s (%s)\n", path, encodingName)
	data, err := readInput(path, enc)
	if err != nil {
		return nil, nil, err
	}
	f, err := htmlparse.ParseWithOptions(data, parseOptions())
	if err != nil {
		return nil, nil, describeParseError(data, err)
	}
	return f, noCleanup, nil
}

// describeParseError prefixes parse failures with the line and column of the
// offending offset.
func describeParseError(src []byte, err error) error {
	var perr *htmlparse.Error
	if errors.As(err, &perr) && perr.Offset >= 0 {
		line, col := types.Position(src, perr.Offset)
		return fmt.Errorf("line %d, column %d: %w", line, col, err)
	}
	return err
}

// describeFileError re-reads a file to attach a line and column to parse
// failures surfaced through the mapped path. Read failures fall back to the
// original error.
func describeFileError(path string, err error) error {
	var perr *htmlparse.Error
	if errors.As(err, &perr) && perr.Kind == htmlparse.ErrKindSyntax && perr.Offset >= 0 {
		if data, rerr := os.ReadFile(path); rerr == nil {
			return describeParseError(data, err)
		}
	}
	return err
}
