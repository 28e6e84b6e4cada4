package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader reads a document from the file named by its flag, or from
// stdin when the flag is unset and stdin is piped.
type FileReader struct {
	fileFlagValue string
	stdin         *os.File
}

func (fr *FileReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a YAML or JSON document (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Provided reports whether a file was named or stdin is piped.
func (fr *FileReader) Provided() bool {
	return fr.fileFlagValue != "" || !IsTerminal(fr.input())
}

// Name describes the input source for messages.
func (fr *FileReader) Name() string {
	if fr.fileFlagValue != "" {
		return fr.fileFlagValue
	}
	return "stdin"
}

func (fr *FileReader) Read() ([]byte, error) {
	if fr.fileFlagValue != "" {
		data, err := os.ReadFile(fr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}

	in := fr.input()
	if IsTerminal(in) {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe input")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func (fr *FileReader) input() *os.File {
	if fr.stdin != nil {
		return fr.stdin
	}
	return os.Stdin
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
