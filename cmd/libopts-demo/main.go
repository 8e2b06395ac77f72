// Command libopts-demo is a runnable example of wiring a specification
// tree and resolving it against argv and the environment.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/d3nwp/libopts"
	"github.com/d3nwp/libopts/tree"
)

const errorKey = "internal/libopts/error"

func buildSpec(ks *tree.KeySet) {
	ks.SetMeta("spec/verbose", "opt", "v")
	ks.SetMeta("spec/verbose", "opt/long", "verbose")
	ks.SetMeta("spec/verbose", "opt/arg", "none")
	ks.SetMeta("spec/verbose", "opt/help", "Enable verbose output.")

	ks.SetMeta("spec/include/#", "opt", "I")
	ks.SetMeta("spec/include/#", "opt/long", "include")
	ks.SetMeta("spec/include/#", "opt/arg", "required")
	ks.SetMeta("spec/include/#", "opt/arg/help", "DIR")
	ks.SetMeta("spec/include/#", "opt/help", "Add a directory to the search path.")

	ks.SetMeta("spec/path/#", "env", "LIBOPTS_DEMO_PATH")

	ks.SetMeta("spec/files/#", "args", "remaining")
}

func main() {
	level := slog.LevelInfo
	posixly := false
	argv := make([]string, 0, len(os.Args))
	argv = append(argv, os.Args[0])
	for _, a := range os.Args[1:] {
		switch a {
		case "-v", "--verbose":
			level = slog.LevelDebug
			argv = append(argv, a)
		case "--posix":
			posixly = true
		default:
			argv = append(argv, a)
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ks := tree.New()
	buildSpec(ks)
	if posixly {
		ks.SetMeta(errorKey, "posixly", "1")
	}

	result, err := libopts.Resolve(ks, argv, os.Environ(), errorKey)
	if err != nil {
		msg, _ := ks.Meta(errorKey, "error")
		fmt.Fprintln(os.Stderr, colorize(color.FgRed, "error:"), msg)
		os.Exit(1)
	}

	if result.Status == libopts.HelpRequested {
		usage, _ := ks.Meta(errorKey, libopts.HelpUsageMeta)
		options, _ := ks.Meta(errorKey, libopts.HelpOptionsMeta)
		fmt.Print(libopts.Help(usage, "", options))
		return
	}

	logger.Debug("resolved configuration", "dump", ks.Dump(libopts.NamespaceProc))

	verbose, _ := ks.Value("proc/verbose")
	if verbose == "1" {
		spew.Dump(ks)
	}

	fmt.Println(colorize(color.FgGreen, "resolved:"))
	fmt.Print(ks.Dump(libopts.NamespaceProc))
}

func colorize(attr color.Attribute, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return color.New(attr).Sprint(s)
}
