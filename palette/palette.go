// Package palette reads lists of color codes.
//
// Codes are taken verbatim, they are only validated when rendered.
package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxTokenSize is the longest single token Parse accepts.
const MaxTokenSize = 16 << 20

// Parse splits r on any whitespace and returns the tokens in order.
func Parse(r io.Reader) ([]string, error) {
	var (
		codes []string
		s     = bufio.NewScanner(r)
	)
	s.Buffer(nil, MaxTokenSize)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		if code := s.Text(); code != "" {
			codes = append(codes, code)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// ReadFile parses the codes in the named file.
func ReadFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	codes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("palette: %s: %w", name, err)
	}
	return codes, nil
}

// Resolve returns the codes in file if a file is given, the literal args otherwise.
func Resolve(args []string, file string) ([]string, error) {
	if file != "" {
		return ReadFile(file)
	}
	codes := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "" {
			codes = append(codes, arg)
		}
	}
	return codes, nil
}
