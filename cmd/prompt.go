package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readLine reads one line from the scanner and returns the trimmed text,
// or "" if the scanner is exhausted (EOF).
func readLine(scanner *bufio.Scanner) string {
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// readWithDefault reads one line and returns def if the input is empty or EOF.
func readWithDefault(scanner *bufio.Scanner, def string) string {
	if text := readLine(scanner); text != "" {
		return text
	}
	return def
}

// readYesNo reads one line and interprets "y"/"yes" as true.
// Empty input or EOF returns defaultYes.
func readYesNo(scanner *bufio.Scanner, defaultYes bool) bool {
	text := strings.ToLower(readLine(scanner))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// ask writes a prompt and reads the answer. A non-empty current value is
// returned without prompting.
func ask(scanner *bufio.Scanner, out io.Writer, current, prompt, def string) string {
	if current != "" {
		return current
	}
	if def != "" {
		fmt.Fprintf(out, "%s [%s]: ", prompt, def)
		return readWithDefault(scanner, def)
	}
	fmt.Fprintf(out, "%s: ", prompt)
	return readLine(scanner)
}
