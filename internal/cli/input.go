package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexkarpovs/lockbox/internal/models"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input
// from reader. The trailing newline is trimmed. If EOF occurs after some
// input was read, the partial line is returned.
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

// GetPassword prints prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep the
// UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer
// needed.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetCategory prints the category menu to w and reads a selection,
// either by number or by exact name. When includeAll is true the pseudo
// category "All" is offered first (for filtering).
func GetCategory(reader *bufio.Reader, w io.Writer, includeAll bool) (string, error) {
	options := models.Categories()
	if includeAll {
		options = append([]string{models.CategoryAll}, options...)
	}

	fmt.Fprintln(w, "Choose a category:")
	for i, c := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, c)
	}

	choice, err := GetSimpleText(reader, "Enter number or name", w)
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("no category %d", n)
		}
		return options[n-1], nil
	}

	for _, c := range options {
		if choice == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", choice)
}
