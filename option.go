package libopts

// HasArg specifies whether an option takes an argument, per spec.md §3's
// "opt/arg" annotation.
type HasArg int

const (
	// ArgRequired is the default: the option always takes an argument.
	ArgRequired HasArg = iota
	// ArgNone means the option never takes an argument.
	ArgNone
	// ArgOptional means the option takes an argument if one is attached
	// (long options only; a short option with ArgOptional behaves as
	// ArgNone, per spec.md §3).
	ArgOptional
)

// String implements fmt.Stringer on HasArg.
func (h HasArg) String() string {
	switch h {
	case ArgNone:
		return "none"
	case ArgOptional:
		return "optional"
	case ArgRequired:
		return "required"
	default:
		return "invalid"
	}
}

func parseHasArg(s string) (HasArg, error) {
	switch s {
	case "", "required":
		return ArgRequired, nil
	case "none":
		return ArgNone, nil
	case "optional":
		return ArgOptional, nil
	default:
		return 0, specErrorf("invalid opt/arg value %q", s)
	}
}

// OptionKind distinguishes a single-valued option from one that accumulates
// a list of values, per spec.md §3 ("kind = array iff the owning spec key's
// last segment is #").
type OptionKind int

const (
	// Single options keep only the last-seen value.
	Single OptionKind = iota
	// Array options accumulate every occurrence, in order.
	Array
)

// OptionKey identifies a compiled option: either a short character or a
// long name, never both. This is the "synthetic option key as handle" that
// Elektra's C kdbOpts represents with extra configuration keys (/short/x, /long/name);
// here it is a small tagged value instead, per spec.md's DESIGN NOTES.
type OptionKey struct {
	Short byte // 0 if this is a long key.
	Long  string
}

func shortKey(c byte) OptionKey   { return OptionKey{Short: c} }
func longKey(name string) OptionKey { return OptionKey{Long: name} }

// IsShort reports whether this key names a short option.
func (k OptionKey) IsShort() bool { return k.Short != 0 }

// String renders the key the way it would appear on a command line.
func (k OptionKey) String() string {
	if k.IsShort() {
		return "-" + string(k.Short)
	}
	return "--" + k.Long
}

// OptionEntry is a compiled option table entry — spec.md §3 "compiled
// option entry".
type OptionEntry struct {
	Key       OptionKey
	SpecKey   string // owning spec-namespace key path.
	HasArg    HasArg
	Kind      OptionKind
	FlagValue string
}

// Table is the compiled option table: every short character and long name
// usable on the command line, each bound to exactly one spec key
// (invariant 3). It always contains the preregistered help entries.
type Table struct {
	byShort map[byte]*OptionEntry
	byLong  map[string]*OptionEntry
}

// newTable returns a Table preregistered with -h/--help, per spec.md §3
// invariant 7.
func newTable() *Table {
	t := &Table{
		byShort: make(map[byte]*OptionEntry),
		byLong:  make(map[string]*OptionEntry),
	}
	t.byShort['h'] = &OptionEntry{Key: shortKey('h'), HasArg: ArgNone, Kind: Single, FlagValue: "1"}
	t.byLong["help"] = &OptionEntry{Key: longKey("help"), HasArg: ArgNone, Kind: Single, FlagValue: "1"}
	return t
}

// IsHelp reports whether entry is one of the preregistered help entries.
func (t *Table) IsHelp(e *OptionEntry) bool {
	return e == t.byShort['h'] || e == t.byLong["help"]
}

// addShort registers a short option character. Returns ErrIllegalSpec on a
// reserved character or a duplicate binding (invariants 1, 3).
func (t *Table) addShort(c byte, e *OptionEntry) error {
	if c == 0 || c == '-' || c == 'h' {
		return specErrorf("short option character %q is reserved or empty", string(c))
	}
	if _, exists := t.byShort[c]; exists {
		return specErrorf("duplicate short option -%s", string(c))
	}
	e.Key = shortKey(c)
	t.byShort[c] = e
	return nil
}

// addLong registers a long option name. Returns ErrIllegalSpec on the
// reserved name "help" or a duplicate binding (invariants 2, 3).
func (t *Table) addLong(name string, e *OptionEntry) error {
	if name == "help" {
		return specErrorf("long option name %q is reserved", name)
	}
	if _, exists := t.byLong[name]; exists {
		return specErrorf("duplicate long option --%s", name)
	}
	e.Key = longKey(name)
	t.byLong[name] = e
	return nil
}

// FindShort looks up a short option's compiled entry.
func (t *Table) FindShort(c byte) (*OptionEntry, bool) {
	e, ok := t.byShort[c]
	return e, ok
}

// FindLong looks up a long option's compiled entry.
func (t *Table) FindLong(name string) (*OptionEntry, bool) {
	e, ok := t.byLong[name]
	return e, ok
}
