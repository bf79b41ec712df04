package palette

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		Name  string
		Input string
		Want  []string
	}{
		{"newlines", "#FF5733\n#33FF57\n#3357FF\n", []string{"#FF5733", "#33FF57", "#3357FF"}},
		{"spaces", "#FF5733 #33FF57   #3357FF", []string{"#FF5733", "#33FF57", "#3357FF"}},
		{"mixed", "\t#1F1F28 \r\n\n  #DCD7BA\t#72A7BC\n\n", []string{"#1F1F28", "#DCD7BA", "#72A7BC"}},
		{"verbatim", "red #abc #FF5733,", []string{"red", "#abc", "#FF5733,"}},
		{"duplicates", "#000000 #000000", []string{"#000000", "#000000"}},
		{"empty", "", nil},
		{"blank", " \n\t\n ", nil},
	}
	for _, test := range testCases {
		t.Run(test.Name, func(it *testing.T) {
			codes, err := Parse(strings.NewReader(test.Input))
			if err != nil {
				it.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.Want, codes); diff != "" {
				it.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLongToken(t *testing.T) {
	long := "#" + strings.Repeat("F", 1<<20)
	codes, err := Parse(strings.NewReader("#000000 " + long + "\n#FFFFFF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 3 || codes[1] != long {
		t.Fatalf("expected 3 codes with the long one in the middle, got %d", len(codes))
	}

	if _, err = Parse(strings.NewReader(strings.Repeat("F", MaxTokenSize+1))); !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("expected bufio.ErrTooLong, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "codes.txt")
	if err := os.WriteFile(name, []byte("#FF5733\n#33FF57\n#3357FF\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	codes, err := ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 3 {
		t.Fatalf("expected 3 codes, got %d", len(codes))
	}
	if diff := cmp.Diff([]string{"#FF5733", "#33FF57", "#3357FF"}, codes); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}

	if _, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	name := filepath.Join(t.TempDir(), "codes.txt")
	if err := os.WriteFile(name, []byte("#FFFFFF #000000"), 0o644); err != nil {
		t.Fatal(err)
	}

	codes, err := Resolve([]string{"#FF5733", "", "#33FF57"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"#FF5733", "#33FF57"}, codes); diff != "" {
		t.Errorf("literal codes mismatch (-want +got):\n%s", diff)
	}

	codes, err = Resolve([]string{"#FF5733"}, name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"#FFFFFF", "#000000"}, codes); diff != "" {
		t.Errorf("file codes mismatch (-want +got):\n%s", diff)
	}

	codes, err = Resolve(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 0 {
		t.Errorf("expected no codes, got %v", codes)
	}
}
