package libopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3nwp/libopts"
	"github.com/d3nwp/libopts/tree"
)

func TestResolveSuccessWritesProcValue(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/verbose", "opt", "v")
	ks.SetMeta("spec/verbose", "opt/long", "verbose")
	ks.SetMeta("spec/verbose", "opt/arg", "none")

	result, err := libopts.Resolve(ks, []string{"prog", "--verbose"}, nil, "internal/libopts/error")
	require.NoError(t, err)
	assert.Equal(t, libopts.Success, result.Status)

	v, ok := ks.Value("proc/verbose")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestResolveHelpLeavesTreeUnchanged(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/verbose", "opt", "v")
	ks.SetMeta("spec/verbose", "opt/arg", "none")

	result, err := libopts.Resolve(ks, []string{"prog", "--help"}, nil, "internal/libopts/error")
	require.NoError(t, err)
	assert.Equal(t, libopts.HelpRequested, result.Status)

	_, ok := ks.Value("proc/verbose")
	assert.False(t, ok)

	usage, ok := ks.Meta("internal/libopts/error", libopts.HelpUsageMeta)
	require.True(t, ok)
	assert.Equal(t, "Usage: prog [OPTION]...\n", usage)
}

func TestResolveIllegalSpecSetsErrorMeta(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/a", "opt", "h")

	_, err := libopts.Resolve(ks, []string{"prog"}, nil, "internal/libopts/error")
	require.Error(t, err)
	assert.ErrorIs(t, err, libopts.ErrIllegalSpec)

	msg, ok := ks.Meta("internal/libopts/error", "error")
	require.True(t, ok)
	assert.NotEmpty(t, msg)
}

func TestResolvePosixlyStopsAtFirstPositional(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/verbose", "opt", "v")
	ks.SetMeta("spec/verbose", "opt/arg", "none")
	ks.SetMeta("spec/files/#", "args", "remaining")
	ks.SetMeta("internal/libopts/error", "posixly", "1")

	_, err := libopts.Resolve(ks, []string{"prog", "foo", "-v"}, nil, "internal/libopts/error")
	require.NoError(t, err)

	f0, ok := ks.Value("proc/files/#0")
	require.True(t, ok)
	assert.Equal(t, "foo", f0)
	f1, ok := ks.Value("proc/files/#1")
	require.True(t, ok)
	assert.Equal(t, "-v", f1)

	_, ok = ks.Value("proc/verbose")
	assert.False(t, ok)
}

func TestResolveEnvFallback(t *testing.T) {
	ks := tree.New()
	ks.SetMeta("spec/name", "env", "DEMO_NAME")

	_, err := libopts.Resolve(ks, []string{"prog"}, []string{"DEMO_NAME=alice"}, "internal/libopts/error")
	require.NoError(t, err)

	v, ok := ks.Value("proc/name")
	require.True(t, ok)
	assert.Equal(t, "alice", v)
}
