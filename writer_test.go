package libopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3nwp/libopts"
	"github.com/d3nwp/libopts/tree"
)

func TestWriteArrayFromShortOption(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/items/#", "opt", "i")
	ks.SetMeta("spec/items/#", "opt/arg", "required")
	table, plans, _, err := libopts.Compile(ks)
	require.NoError(t, err)

	occ, positionals, err := libopts.ParseArgs(table, []string{"prog", "-i", "a", "-i", "b"}, false)
	require.NoError(t, err)

	require.NoError(t, libopts.Write(ks, plans, occ, nil, positionals))

	v, ok := ks.Value("proc/items")
	require.True(t, ok)
	assert.Equal(t, "#1", v)
	v0, _ := ks.Value("proc/items/#0")
	v1, _ := ks.Value("proc/items/#1")
	assert.Equal(t, "a", v0)
	assert.Equal(t, "b", v1)
}

func TestWriteEnvPathSplitting(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/path/#", "env", "PATH")
	_, plans, _, err := libopts.Compile(ks)
	require.NoError(t, err)

	occ, positionals, err := libopts.ParseArgs(mustTable(ks), nil, false)
	require.NoError(t, err)

	env := map[string]string{"PATH": "/a" + libopts.PathListSeparator + "/b" + libopts.PathListSeparator}
	require.NoError(t, libopts.Write(ks, plans, occ, env, positionals))

	p0, _ := ks.Value("proc/path/#0")
	p1, _ := ks.Value("proc/path/#1")
	p2, _ := ks.Value("proc/path/#2")
	parent, _ := ks.Value("proc/path")
	assert.Equal(t, "/a", p0)
	assert.Equal(t, "/b", p1)
	assert.Equal(t, "", p2)
	assert.Equal(t, "#2", parent)
}

func TestWriteArgsRemaining(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/files/#", "args", "remaining")
	table, plans, _, err := libopts.Compile(ks)
	require.NoError(t, err)

	occ, positionals, err := libopts.ParseArgs(table, []string{"prog", "--", "-x", "y"}, false)
	require.NoError(t, err)

	require.NoError(t, libopts.Write(ks, plans, occ, nil, positionals))

	f0, _ := ks.Value("proc/files/#0")
	f1, _ := ks.Value("proc/files/#1")
	assert.Equal(t, "-x", f0)
	assert.Equal(t, "y", f1)
}

func TestWriteRejectsSecondSourceForSameKey(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/out", "opt/long", "out")
	ks.SetMeta("spec/out", "env", "OUT")
	ks.SetValue("proc/out", "already-set")
	table, plans, _, err := libopts.Compile(ks)
	require.NoError(t, err)

	occ, positionals, err := libopts.ParseArgs(table, []string{"prog", "--out", "fromflag"}, false)
	require.NoError(t, err)

	err = libopts.Write(ks, plans, occ, map[string]string{"OUT": "fromenv"}, positionals)
	require.Error(t, err)
	assert.ErrorIs(t, err, libopts.ErrIllegalUse)
}

func mustTable(ks *tree.KeySet) *libopts.Table {
	table, _, _, err := libopts.Compile(ks)
	if err != nil {
		panic(err)
	}
	return table
}
