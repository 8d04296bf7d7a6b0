package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize applies NFC so composed and decomposed spellings of the same
// character derive identically. Both pattern text and input text pass
// through here; one normalized rune is one derivative step.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// readOneLine reads a single line from r, without the trailing newline.
// Used by match when no input argument is given.
func readOneLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	if line == "" && err == io.EOF {
		return "", fmt.Errorf("read input: empty stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// lineScanner returns a scanner with a buffer large enough for long
// lines. The default 64K token limit is too small for log files.
func lineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
