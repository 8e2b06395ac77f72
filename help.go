package libopts

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// HelpUsageMeta and HelpOptionsMeta are the metadata names Resolve writes
// usage/options help text to on the error key, per spec.md §6.
const (
	HelpUsageMeta   = "internal/libopts/help/usage"
	HelpOptionsMeta = "internal/libopts/help/options"
)

var helpHeading = color.New(color.Bold)

// RenderUsage renders the usage line: "Usage: <progname>[ [OPTION]...][ [ARG]...]\n",
// per spec.md §4.5. progname is argv0 with everything up to and including
// the last "/" stripped.
func RenderUsage(argv0 string, hasOpts, hasArgs bool) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(progName(argv0))
	if hasOpts {
		b.WriteString(" [OPTION]...")
	}
	if hasArgs {
		b.WriteString(" [ARG]...")
	}
	b.WriteString("\n")
	return b.String()
}

func progName(argv0 string) string {
	if i := strings.LastIndexByte(argv0, '/'); i >= 0 {
		return argv0[i+1:]
	}
	return argv0
}

// RenderOptions renders the options block: the heading "OPTIONS" followed
// by one help line per plan entry that carries one, per spec.md §4.5. An
// empty plan list renders an empty string.
func RenderOptions(plans []*PlanEntry) string {
	var lines []string
	for _, p := range plans {
		if p.HasHelp {
			lines = append(lines, p.HelpLine)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	heading := "OPTIONS"
	if isatty.IsTerminal(os.Stdout.Fd()) {
		heading = helpHeading.Sprint(heading)
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Help concatenates a usage line, a caller-supplied prefix, and an options
// block into the final help text, per spec.md §4.5.
func Help(usage, prefix, options string) string {
	var b strings.Builder
	b.WriteString(usage)
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString("\n")
	}
	b.WriteString(options)
	return b.String()
}
