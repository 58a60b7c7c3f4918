package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Output behavior toggles, wired from the root command's persistent flags.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags records the root command's --quiet, --no-color and --yes
// flags so the helpers below can honor them.
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// PromptLine prints prompt and reads one trimmed line from stdin.
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. An empty answer takes the default, and
// --yes skips the prompt entirely.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	answer, err := PromptLine(prompt + suffix)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

func status(w *os.File, symbol, plain, format string, args ...interface{}) {
	prefix := symbol
	if noColor {
		prefix = plain
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// PrintSuccess reports a completed action. Silenced by --quiet.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	status(os.Stdout, "✓", "OK:", format, args...)
}

// PrintInfo reports incidental detail. Silenced by --quiet.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	status(os.Stdout, "ℹ", "INFO:", format, args...)
}

// PrintWarning reports a non-fatal problem on stderr. Never silenced.
func PrintWarning(format string, args ...interface{}) {
	status(os.Stderr, "⚠", "WARNING:", format, args...)
}
