package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Bux42/leekscript-vscode-sub000/source/compiler"
	"github.com/Bux42/leekscript-vscode-sub000/source/folder"
	"github.com/Bux42/leekscript-vscode-sub000/source/repl"
	"github.com/Bux42/leekscript-vscode-sub000/source/settings"
	"github.com/Bux42/leekscript-vscode-sub000/source/text"
)

func main() {
	options := compiler.DefaultOptions()
	asJSON := false
	path := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-v", "--version":
			fmt.Println("leekscript analyzer " + text.VERSION)
			return
		case "-h", "--help":
			fmt.Print(text.HELP)
			return
		case "-s", "--strict":
			options.Strict = true
		case "--json":
			asJSON = true
		case "--lsv":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--lsv needs a version number")
				os.Exit(2)
			}
			i++
			v, e := strconv.Atoi(args[i])
			if e != nil || v < settings.MIN_VERSION || v > settings.MAX_VERSION {
				fmt.Fprintf(os.Stderr, "--lsv takes a version from %d to %d\n",
					settings.MIN_VERSION, settings.MAX_VERSION)
				os.Exit(2)
			}
			options.Version = v
		default:
			path = args[i]
		}
	}

	if path == "" {
		fmt.Print(text.Logo())
		repl.Start(options, os.Stdout)
		return
	}

	result, e := analyzeFile(path, options)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(2)
	}
	if asJSON {
		json.NewEncoder(os.Stdout).Encode(result.Encode())
	} else {
		fmt.Print(text.DescribeAll(result.Diagnostics))
		if result.Failure != nil {
			fmt.Println(text.Red("analysis failed: ") + result.Failure.Message())
		} else if result.Success {
			fmt.Println(text.Green("ok") + " (" +
				strconv.FormatInt(result.ParseTimeMs+result.AnalyzeTimeMs, 10) + "ms)")
		}
	}
	if !result.Success {
		os.Exit(1)
	}
}

// analyzeFile loads the script's directory into an in-memory tree so that
// its includes resolve the way the editor tooling resolves them, then
// analyzes the script.
func analyzeFile(path string, options compiler.Options) (compiler.Result, error) {
	abs, e := filepath.Abs(path)
	if e != nil {
		return compiler.Result{}, e
	}
	id := 0
	var target *folder.Unit
	root := folder.NewRoot()
	if e := loadDir(root, filepath.Dir(abs), abs, &id, &target); e != nil {
		return compiler.Result{}, e
	}
	if target == nil {
		return compiler.Result{}, fmt.Errorf("cannot read %s", path)
	}
	return compiler.New(options).Analyze(target), nil
}

func loadDir(f *folder.Folder, dir, wanted string, id *int, target **folder.Unit) error {
	entries, e := os.ReadDir(dir)
	if e != nil {
		return e
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if e := loadDir(f.AddFolder(entry.Name()), full, wanted, id, target); e != nil {
				return e
			}
			continue
		}
		source, e := os.ReadFile(full)
		if e != nil {
			return e
		}
		*id++
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		unit := f.AddUnit(name, &folder.Unit{ID: *id, Path: full, Source: string(source)})
		if full == wanted {
			*target = unit
		}
	}
	return nil
}
