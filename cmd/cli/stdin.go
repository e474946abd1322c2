package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// hasStdinInput reports whether in is a pipe or redirect rather than a
// terminal. Readers that are not files count as piped input.
func hasStdinInput(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// readStdinLines reads every line from in
func readStdinLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return lines, nil
}
