package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lmorg/readline"

	"github.com/Bux42/leekscript-vscode-sub000/source/compiler"
	"github.com/Bux42/leekscript-vscode-sub000/source/folder"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/text"
)

// The REPL analyzes each line as a complete script and reports the
// diagnostics. It keeps no state between lines other than the options;
// it is a scratchpad for the analyzer, not an evaluator.
func Start(options compiler.Options, out io.Writer) {
	rline := readline.NewInstance()
	for {
		rline.SetPrompt(makePrompt(options))
		line, _ := rline.Readline()
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := doCommand(line, &options, out); quit {
			break
		}
	}
}

// doCommand handles the meta-commands and hands everything else to the
// analyzer. Returns whether the REPL should quit.
func doCommand(line string, options *compiler.Options, out io.Writer) bool {
	words := strings.Fields(line)
	switch words[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(out, text.HELP)
		return false
	case "strict":
		options.Strict = !options.Strict
		fmt.Fprintf(out, "strict mode %s\n", onOff(options.Strict))
		return false
	case "lsv":
		if len(words) == 2 {
			if v, e := strconv.Atoi(words[1]); e == nil &&
				v >= settings.MIN_VERSION && v <= settings.MAX_VERSION {
				options.Version = v
				fmt.Fprintf(out, "analyzing as LeekScript %d\n", v)
				return false
			}
		}
		fmt.Fprintf(out, "usage: lsv <%d-%d>\n", settings.MIN_VERSION, settings.MAX_VERSION)
		return false
	}
	analyzeLine(line, *options, out)
	return false
}

func analyzeLine(line string, options compiler.Options, out io.Writer) {
	root := folder.NewRoot()
	unit := root.AddUnit("input", &folder.Unit{ID: 1, Path: "input", Source: line})
	result := compiler.New(options).Analyze(unit)
	if result.Failure != nil {
		fmt.Fprintln(out, text.Red("analysis failed: ")+result.Failure.Message())
	}
	fmt.Fprint(out, text.DescribeAll(result.Diagnostics))
	if result.Success && len(result.Diagnostics) == 0 {
		fmt.Fprintln(out, text.Green("ok"))
	}
}

func makePrompt(options compiler.Options) string {
	prompt := "ls" + strconv.Itoa(options.Version) + " " + text.PROMPT
	if options.Strict {
		prompt = "ls" + strconv.Itoa(options.Version) + "! " + text.PROMPT
	}
	return prompt
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
