package libopts

import (
	"strings"

	"github.com/vedranvuk/strutils"
)

// ArgKind classifies one argv token, mirroring the grammar of spec.md §4.3.
type ArgKind int

const (
	// NoArg means the cursor has run out of tokens.
	NoArg ArgKind = iota
	// EndOfOptions is the literal token "--".
	EndOfOptions
	// LongArg is a token beginning with "--" followed by at least one
	// character.
	LongArg
	// ShortCluster is a token beginning with a single "-" followed by at
	// least one non-"-" character.
	ShortCluster
	// Positional is any other token, including the lone "-".
	Positional
)

// Args is a cursor over argv, classifying each token into an ArgKind and
// splitting long options at their first "=".
type Args struct {
	argv []string
	pos  int
}

// NewArgs returns a cursor positioned at argv[0].
func NewArgs(argv []string) *Args {
	return &Args{argv: argv}
}

// Eof reports whether the cursor has consumed every token.
func (a *Args) Eof() bool { return a.pos >= len(a.argv) }

// Kind classifies the current token without consuming it.
func (a *Args) Kind() ArgKind {
	if a.Eof() {
		return NoArg
	}
	tok := a.argv[a.pos]
	switch {
	case tok == "--":
		return EndOfOptions
	case len(tok) >= 2 && tok[0] == '-' && tok[1] == '-':
		return LongArg
	case len(tok) >= 2 && tok[0] == '-':
		return ShortCluster
	default:
		return Positional
	}
}

// Text returns the current token verbatim.
func (a *Args) Text() string {
	if a.Eof() {
		return ""
	}
	return a.argv[a.pos]
}

// Next advances the cursor by one token.
func (a *Args) Next() { a.pos++ }

// LongName splits the current LongArg token into its name and, if present,
// its attached "=value" (unquoted via strutils), mirroring the teacher's
// attached-value handling.
func (a *Args) LongName() (name string, value string, hasValue bool) {
	tok := a.argv[a.pos][2:]
	if i := strings.IndexByte(tok, '='); i >= 0 {
		name = tok[:i]
		raw := tok[i+1:]
		if unquoted, err := strutils.UnquoteDouble(raw); err == nil {
			raw = unquoted
		}
		return name, raw, true
	}
	return tok, "", false
}

// ShortChars returns the characters of the current short-cluster token,
// excluding the leading "-".
func (a *Args) ShortChars() string {
	return a.argv[a.pos][1:]
}
