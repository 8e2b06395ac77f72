package libopts

// Write applies each plan entry's resolution precedence — short option,
// long option, env var, positional remainder — and writes the chosen
// source into the configuration tree, per spec.md §4.4.
func Write(tree ConfigTree, plans []*PlanEntry, occ *Occurrences, env map[string]string, positionals []string) error {
	for _, plan := range plans {
		if err := writePlan(tree, plan, occ, env, positionals); err != nil {
			return err
		}
	}
	return nil
}

func writePlan(tree ConfigTree, plan *PlanEntry, occ *Occurrences, env map[string]string, positionals []string) error {
	occurrence, hasOccurrence := occ.Get(plan.SpecKey)

	switch {
	case hasOccurrence && occurrence.Values != nil:
		return writeArray(tree, plan, occurrence.Values)

	case hasOccurrence:
		return writeSingle(tree, plan, occurrence.Value)

	default:
		if _, value, ok := lookupEnv(plan, env); ok {
			if isArrayKey(plan.SpecKey) {
				return writeArray(tree, plan, SplitPathList(value))
			}
			return writeSingle(tree, plan, value)
		}

		if plan.Args {
			if len(positionals) == 0 {
				return nil
			}
			return writeArray(tree, plan, positionals)
		}

		return nil
	}
}

func lookupEnv(plan *PlanEntry, env map[string]string) (name, value string, ok bool) {
	for _, envName := range plan.Envs {
		if v, present := env[envName]; present {
			return envName, v, true
		}
	}
	return "", "", false
}

func writeSingle(tree ConfigTree, plan *PlanEntry, value string) error {
	if existing, ok := tree.Value(plan.ProcKey); ok && existing != "" {
		return useErrorf("another option has already been used for %q", plan.SpecKey)
	}
	tree.SetValue(plan.ProcKey, value)
	return nil
}

func writeArray(tree ConfigTree, plan *PlanEntry, values []string) error {
	if existing, ok := tree.Value(plan.ProcKey); ok && existing != "" {
		return useErrorf("another option has already been used for %q", plan.SpecKey)
	}
	for _, v := range values {
		appendArrayElement(tree, plan.ProcKey, v)
	}
	return nil
}
