package libopts

// Occurrence is the recorded effect of one or more option tokens bound to
// the same spec key.
type Occurrence struct {
	Value  string   // last-seen value, for Single options.
	Values []string // accumulated values, in order, for Array options.
	// short is set once a short-option occurrence has been recorded for
	// this spec key, so a later long occurrence for the same key is
	// shadowed rather than rejected as a repeat — spec.md §4.3/§4.4. It
	// lives on the occurrence (per spec key), not on an *OptionEntry,
	// since a single-slot "opt"/"opt/long" pair compiles to two distinct
	// entries sharing one spec key.
	short bool
}

// Occurrences maps a spec key to what was seen for its bound option during
// parsing. Keyed by spec key path, since the short and long slot for one
// spec key's multi-valued "opt" share one occurrence record — see
// shadowing, spec.md §4.3.
type Occurrences struct {
	bySpecKey map[string]*Occurrence
}

func newOccurrences() *Occurrences {
	return &Occurrences{bySpecKey: make(map[string]*Occurrence)}
}

// Get returns the occurrence recorded for a spec key, if any.
func (o *Occurrences) Get(specKey string) (*Occurrence, bool) {
	occ, ok := o.bySpecKey[specKey]
	return occ, ok
}

func (o *Occurrences) recordSingle(specKey, value string, short bool) {
	o.bySpecKey[specKey] = &Occurrence{Value: value, short: short}
}

func (o *Occurrences) recordArray(specKey, value string) {
	occ, ok := o.bySpecKey[specKey]
	if !ok {
		occ = &Occurrence{}
		o.bySpecKey[specKey] = occ
	}
	occ.Values = append(occ.Values, value)
}

// ParseArgs scans argv[1:] against table, producing option occurrences and
// the residual positional list, per spec.md §4.3.
func ParseArgs(table *Table, argv []string, posixly bool) (*Occurrences, []string, error) {
	occ := newOccurrences()
	var positionals []string

	if len(argv) == 0 {
		return occ, positionals, nil
	}

	a := NewArgs(argv[1:])
	optionsEnded := false

	for !a.Eof() {
		if optionsEnded {
			positionals = append(positionals, a.Text())
			a.Next()
			continue
		}

		switch a.Kind() {
		case EndOfOptions:
			optionsEnded = true
			a.Next()

		case LongArg:
			if err := parseLongArg(table, a, occ); err != nil {
				return nil, nil, err
			}

		case ShortCluster:
			if err := parseShortCluster(table, a, occ); err != nil {
				return nil, nil, err
			}

		default: // Positional
			positionals = append(positionals, a.Text())
			a.Next()
			if posixly {
				optionsEnded = true
			}
		}
	}

	return occ, positionals, nil
}

func parseLongArg(table *Table, a *Args, occ *Occurrences) error {
	name, attached, hasAttached := a.LongName()
	entry, ok := table.FindLong(name)
	if !ok {
		return useErrorf("unknown option --%s", name)
	}
	a.Next()

	switch entry.HasArg {
	case ArgRequired:
		value := attached
		if !hasAttached {
			if a.Eof() {
				return useErrorf("option --%s requires an argument", name)
			}
			value = a.Text()
			a.Next()
		}
		return recordOccurrence(occ, entry, value, false)

	case ArgOptional:
		value := entry.FlagValue
		if hasAttached {
			value = attached
		}
		return recordOccurrence(occ, entry, value, false)

	default: // ArgNone
		if hasAttached {
			return useErrorf("option --%s does not accept an argument", name)
		}
		return recordOccurrence(occ, entry, entry.FlagValue, false)
	}
}

func parseShortCluster(table *Table, a *Args, occ *Occurrences) error {
	chars := a.ShortChars()
	a.Next()

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		entry, ok := table.FindShort(c)
		if !ok {
			return useErrorf("unknown option -%s", string(c))
		}

		if entry.HasArg == ArgRequired {
			var value string
			if i+1 < len(chars) {
				value = chars[i+1:]
				i = len(chars)
			} else {
				if a.Eof() {
					return useErrorf("option -%s requires an argument", string(c))
				}
				value = a.Text()
				a.Next()
			}
			if err := recordOccurrence(occ, entry, value, true); err != nil {
				return err
			}
			continue
		}

		// ArgNone, and ArgOptional behaves as ArgNone for short options.
		if err := recordOccurrence(occ, entry, entry.FlagValue, true); err != nil {
			return err
		}
	}
	return nil
}

// recordOccurrence applies the repetition and short/long shadowing rules of
// spec.md §4.3/§4.4.
func recordOccurrence(occ *Occurrences, entry *OptionEntry, value string, short bool) error {
	if entry.Kind == Array {
		occ.recordArray(entry.SpecKey, value)
		return nil
	}

	if existing, already := occ.Get(entry.SpecKey); already {
		if !short && existing.short {
			// A long occurrence after a short one for the same key: the
			// short occurrence shadows it, per spec.md §4.4.
			return nil
		}
		return useErrorf("option bound to %q cannot be repeated", entry.SpecKey)
	}

	occ.recordSingle(entry.SpecKey, value, short)
	return nil
}
