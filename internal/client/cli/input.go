package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// GetSimpleText prompts and reads one trimmed line.
func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret prompts and reads a line without echoing when stdin is a
// terminal. Identity tokens are secrets; they should not end up in scroll
// history. Falls back to plain reading when input is piped.
func GetSecret(reader *bufio.Reader, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetSimpleText(reader, prompt)
	}

	fmt.Println(prompt)
	secret, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(secret)), nil
}
