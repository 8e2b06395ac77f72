package libopts

import (
	"strconv"
	"strings"
)

// PlanEntry is the resolution plan for one spec key, built by Compile and
// consumed by Write — spec.md §3 "Resolution plan entry".
type PlanEntry struct {
	SpecKey string // absolute spec-namespace path.
	ProcKey string // absolute proc-namespace path (sibling of SpecKey).

	Short *OptionEntry // nil if no short binding.
	Long  *OptionEntry // nil if no long binding.
	Envs  []string     // env var names bound to this key, in declaration order.
	Args  bool         // true if args=remaining.

	HelpLine string // precomputed, padded help line; "" if opt/nohelp.
	HasHelp  bool
}

// Meta carries the booleans the help renderer needs alongside the plan
// list — spec.md §4.1 "two booleans hasOpts, hasArgs".
type Meta struct {
	HasOpts bool
	HasArgs bool
}

const (
	helpColumn    = 30
	helpWrapAfter = 28
)

// Compile walks every key in the spec namespace and builds the option
// table and resolution plan list, per spec.md §4.1. It is the only place
// ErrIllegalSpec is raised.
func Compile(tree ConfigTree) (*Table, []*PlanEntry, Meta, error) {
	table := newTable()
	var plans []*PlanEntry
	var meta Meta
	usedEnv := make(map[string]bool)

	for _, specKey := range tree.Keys(NamespaceSpec) {
		plan := &PlanEntry{
			SpecKey: specKey,
			ProcKey: siblingPath(specKey, NamespaceProc),
		}
		bound := false

		if hasOpt(tree, specKey) {
			if err := compileOptions(tree, specKey, table, plan, &meta); err != nil {
				return nil, nil, Meta{}, err
			}
			bound = true
		}

		if hasEnv(tree, specKey) {
			if err := compileEnv(tree, specKey, plan, usedEnv); err != nil {
				return nil, nil, Meta{}, err
			}
			bound = true
		}

		if v, ok := tree.Meta(specKey, "args"); ok && v == "remaining" {
			if !isArrayKey(specKey) {
				return nil, nil, Meta{}, specErrorf("args=remaining on non-array key %q", specKey)
			}
			plan.Args = true
			meta.HasArgs = true
			bound = true
		}

		if bound {
			plans = append(plans, plan)
		}
	}

	return table, plans, meta, nil
}

// hasOpt reports whether specKey declares any option binding at all: either
// the bare "opt" slot (scalar short char, or the "#" array marker) or an
// "opt/long" with no accompanying "opt" — spec.md §9's "allow opt/long
// without opt".
func hasOpt(tree ConfigTree, specKey string) bool {
	if _, ok := tree.Meta(specKey, "opt"); ok {
		return true
	}
	_, ok := tree.Meta(specKey, "opt/long")
	return ok
}

func hasEnv(tree ConfigTree, specKey string) bool {
	_, ok := tree.Meta(specKey, "env")
	return ok
}

// optSlot is one expanded "opt"-family slot (index i, or the single scalar
// slot when opt is not an array).
type optSlot struct {
	prefix string // "opt" or "opt/#N"
}

func optSlots(tree ConfigTree, specKey string) []optSlot {
	v, _ := tree.Meta(specKey, "opt")
	if v != arraySegment {
		return []optSlot{{prefix: "opt"}}
	}
	var slots []optSlot
	for i := 0; ; i++ {
		prefix := "opt/" + arrayElemPrefix + strconv.Itoa(i)
		_, hasShort := tree.Meta(specKey, prefix)
		_, hasLong := tree.Meta(specKey, prefix+"/long")
		if !hasShort && !hasLong {
			break
		}
		slots = append(slots, optSlot{prefix: prefix})
	}
	return slots
}

func metaName(prefix, suffix string) string {
	if suffix == "" {
		return prefix
	}
	return prefix + "/" + suffix
}

func compileOptions(tree ConfigTree, specKey string, table *Table, plan *PlanEntry, meta *Meta) error {
	kind := Single
	if isArrayKey(specKey) {
		kind = Array
	}

	for _, slot := range optSlots(tree, specKey) {
		shortRaw, hasShort := tree.Meta(specKey, metaName(slot.prefix, ""))
		longRaw, hasLong := tree.Meta(specKey, metaName(slot.prefix, "long"))
		if !hasShort && !hasLong {
			continue
		}

		argMode, err := parseHasArg(firstOr(tree, specKey, metaName(slot.prefix, "arg"), ""))
		if err != nil {
			return err
		}
		flagValue, hasFlagValue := tree.Meta(specKey, metaName(slot.prefix, "flagvalue"))
		if hasFlagValue && argMode == ArgRequired {
			return specErrorf("opt/flagvalue set on required option for key %q", specKey)
		}
		if !hasFlagValue {
			flagValue = "1"
		}
		argHelp, _ := tree.Meta(specKey, metaName(slot.prefix, "arg/help"))
		if argHelp == "" {
			argHelp = "ARG"
		}
		hidden := false
		if v, ok := tree.Meta(specKey, metaName(slot.prefix, "nohelp")); ok && v == "1" {
			hidden = true
		}

		var shortEntry, longEntry *OptionEntry
		var shortForm, longForm string

		if hasShort {
			if shortRaw == "" || shortRaw[0] == '-' || shortRaw[0] == 'h' {
				return specErrorf("illegal short option character %q for key %q", shortRaw, specKey)
			}
			e := &OptionEntry{SpecKey: specKey, HasArg: argMode, Kind: kind, FlagValue: flagValue}
			if err := table.addShort(shortRaw[0], e); err != nil {
				return err
			}
			shortEntry = e
			if !hidden {
				shortForm = "-" + shortRaw[:1]
			}
		}

		if hasLong && longRaw != "" {
			if longRaw == "help" {
				return specErrorf("long option name %q reserved, used by key %q", longRaw, specKey)
			}
			e := &OptionEntry{SpecKey: specKey, HasArg: argMode, Kind: kind, FlagValue: flagValue}
			if err := table.addLong(longRaw, e); err != nil {
				return err
			}
			longEntry = e
			if !hidden {
				longForm = "--" + longRaw + argSuffix(argMode, argHelp)
			}
		}

		if shortEntry != nil {
			plan.Short = shortEntry
		}
		if longEntry != nil {
			plan.Long = longEntry
		}

		if !hidden && (shortForm != "" || longForm != "") {
			meta.HasOpts = true
			help, _ := tree.Meta(specKey, metaName(slot.prefix, "help"))
			if help == "" {
				help, _ = tree.Meta(specKey, "description")
			}
			prefix := joinForms(shortForm, longForm)
			plan.HelpLine = renderHelpLine(prefix, help)
			plan.HasHelp = true
		}
	}
	return nil
}

func firstOr(tree ConfigTree, specKey, name, def string) string {
	if v, ok := tree.Meta(specKey, name); ok {
		return v
	}
	return def
}

func argSuffix(mode HasArg, argHelp string) string {
	switch mode {
	case ArgRequired:
		return "=" + argHelp
	case ArgOptional:
		return "=[" + argHelp + "]"
	default:
		return ""
	}
}

func joinForms(short, long string) string {
	switch {
	case short != "" && long != "":
		return short + ", " + long
	case short != "":
		return short
	default:
		return long
	}
}

// renderHelpLine pads prefix to helpColumn and appends help, wrapping onto
// an indented new line when prefix exceeds helpWrapAfter — spec.md §4.1.
func renderHelpLine(prefix, help string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(prefix)
	if help == "" {
		return b.String()
	}
	if len(prefix) > helpWrapAfter {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", helpColumn))
	} else {
		pad := helpColumn - len(prefix) - 2
		if pad < 1 {
			pad = 1
		}
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(help)
	return b.String()
}

func compileEnv(tree ConfigTree, specKey string, plan *PlanEntry, usedEnv map[string]bool) error {
	v, _ := tree.Meta(specKey, "env")
	if v != arraySegment {
		if usedEnv[v] {
			return specErrorf("environment variable %q bound to more than one key", v)
		}
		usedEnv[v] = true
		plan.Envs = append(plan.Envs, v)
		return nil
	}
	for i := 0; ; i++ {
		name, ok := tree.Meta(specKey, "env/"+arrayElemPrefix+strconv.Itoa(i))
		if !ok {
			break
		}
		if usedEnv[name] {
			return specErrorf("environment variable %q bound to more than one key", name)
		}
		usedEnv[name] = true
		plan.Envs = append(plan.Envs, name)
	}
	return nil
}
