package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetChoice prints a numbered list of options and reads the user's pick.
// An empty line means "no choice" and returns -1 with a nil error; any other
// input must be a number between 1 and len(options).
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (int, error) {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return 0, err
	}
	for i, opt := range options {
		if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, opt); err != nil {
			return 0, err
		}
	}

	line, err := GetSimpleText(reader, "Number (empty to skip)", w)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return -1, nil
	}

	var n int
	if _, err := fmt.Sscanf(line, "%d", &n); err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("invalid choice: %q", line)
	}
	return n - 1, nil
}
