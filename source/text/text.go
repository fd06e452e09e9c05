package text

// Text utilities for the command line front end: color, emphasis, and the
// human-readable rendering of diagnostics.

import (
	"strconv"
	"strings"

	"github.com/Bux42/leekscript-vscode-sub000/source/err"
	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

const (
	VERSION = "0.3.2"
	PROMPT  = "→ "
	BULLET  = "  ▪ "
)

const (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"
)

func Red(s string) string    { return RED + s + RESET }
func Green(s string) string  { return GREEN + s + RESET }
func Yellow(s string) string { return YELLOW + s + RESET }
func Cyan(s string) string   { return CYAN + s + RESET }

func Emph(s string) string { return "'" + s + "'" }

func Logo() string {
	titleText := " LeekScript analyzer, version " + VERSION + " "
	leek := Green("⌁")
	leftMargin := "  "
	bar := strings.Repeat("═", len([]rune(titleText))/2)
	return "\n" +
		leftMargin + "╔" + bar + leek + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + leek + bar + "╝\n\n"
}

const HELP = "\nUsage: leekscript [-v | --version] [-h | --help]\n" +
	"                  [-s | --strict] [--json] [--lsv <1-4>] [file]\n\n" +
	"With a file argument the file is analyzed and the diagnostics printed;\n" +
	"includes resolve against the file's directory. With no file you get a\n" +
	"REPL that analyzes each line as a script.\n\n"

// DescribePos renders a token's position for the terminal, with 1-based
// columns like the editor encoding.
func DescribePos(tok *token.Token) string {
	source := tok.Source
	if source == "" {
		source = "input"
	}
	result := source + ":" + strconv.Itoa(tok.Line) + ":" + strconv.Itoa(tok.ChStart+1)
	if tok.ChEnd > tok.ChStart+1 {
		result += "-" + strconv.Itoa(tok.ChEnd)
	}
	return result
}

// DescribeDiagnostic is the one-line terminal form of a diagnostic, colored
// by severity.
func DescribeDiagnostic(e *err.Error) string {
	label := Red("error")
	if e.Severity == err.WARNING {
		label = Yellow("warning")
	}
	return BULLET + DescribePos(e.Token) + " " + label + ": " + e.Message()
}

func DescribeAll(diagnostics err.Errors) string {
	var sb strings.Builder
	for _, e := range diagnostics {
		sb.WriteString(DescribeDiagnostic(e))
		sb.WriteString("\n")
	}
	return sb.String()
}
