package libopts

// Status is the outcome of a Resolve call, mirroring spec.md §6's
// conceptual "{0 success, 1 help, -1 error}" result.
type Status int

const (
	// Success means argv and envp were parsed and applied to the tree.
	Success Status = iota
	// HelpRequested means -h or --help was seen; the tree is unchanged.
	HelpRequested
)

// Result is the outcome of Resolve.
type Result struct {
	Status Status
}

// Resolve is the library's entry point. It compiles tree's specification
// (C1), reads envp (C2) and parses argv (C3), and — on success — applies
// the precedence-aware writer (C4) into the tree. If -h/--help was given,
// it instead renders help text (C5) onto errorKey's metadata and leaves
// tree untouched. Errors set a message on errorKey's "error" metadata
// entry, mirroring spec.md §7.
func Resolve(tree ConfigTree, argv, envp []string, errorKey string) (Result, error) {
	table, plans, meta, err := Compile(tree)
	if err != nil {
		setError(tree, errorKey, err)
		return Result{}, err
	}

	posixly := false
	if v, ok := tree.Meta(errorKey, "posixly"); ok && v == "1" {
		posixly = true
	}

	occ, positionals, err := ParseArgs(table, argv, posixly)
	if err != nil {
		setError(tree, errorKey, err)
		return Result{}, err
	}

	if helpRequested(occ) {
		usage := RenderUsage(argv0(argv), meta.HasOpts, meta.HasArgs)
		options := RenderOptions(plans)
		tree.SetMeta(errorKey, HelpUsageMeta, usage)
		tree.SetMeta(errorKey, HelpOptionsMeta, options)
		return Result{Status: HelpRequested}, nil
	}

	env := ParseEnviron(envp)

	if err := Write(tree, plans, occ, env, positionals); err != nil {
		setError(tree, errorKey, err)
		return Result{}, err
	}

	return Result{Status: Success}, nil
}

// helpRequested reports whether either preregistered help entry was seen.
// Both -h and --help are recorded under the empty spec key, since
// preregistered entries have no owning spec key (spec.md §4.1
// "Preregistration").
func helpRequested(occ *Occurrences) bool {
	_, ok := occ.Get("")
	return ok
}

func argv0(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	return argv[0]
}

func setError(tree ConfigTree, errorKey string, err error) {
	tree.SetMeta(errorKey, "error", err.Error())
}
