package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
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

// GetToken prompts for the access token and reads it from the terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func GetToken(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Paste access token: "); err != nil {
		return "", err
	}
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// GetDate reads a date in YYYY-MM-DD form. An empty line returns the zero
// time with ok=false so callers can treat the field as optional.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (time.Time, bool, error) {
	s, err := GetSimpleText(reader, prompt+" (YYYY-MM-DD)", w)
	if err != nil {
		return time.Time{}, false, err
	}
	if s == "" {
		return time.Time{}, false, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false, err
	}
	return d, true, nil
}

// GetFloat reads a decimal number. An empty line returns 0.
func GetFloat(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// GetInt reads an integer. An empty line returns 0.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
