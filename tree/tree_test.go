package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySetValueRoundTrip(t *testing.T) {
	ks := New()
	_, ok := ks.Value("spec/verbose")
	require.False(t, ok)

	ks.SetValue("spec/verbose", "1")
	v, ok := ks.Value("spec/verbose")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.True(t, ks.Has("spec/verbose"))
}

func TestKeySetMeta(t *testing.T) {
	ks := New()
	ks.SetMeta("spec/verbose", "opt", "v")
	ks.SetMeta("spec/verbose", "opt/arg", "none")

	v, ok := ks.Meta("spec/verbose", "opt")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = ks.Meta("spec/verbose", "missing")
	assert.False(t, ok)
}

func TestKeySetKeysStableOrder(t *testing.T) {
	ks := New()
	ks.SetValue("spec/c", "")
	ks.SetValue("spec/a", "")
	ks.SetValue("spec/b", "")
	ks.SetValue("proc/x", "")

	assert.Equal(t, []string{"spec/c", "spec/a", "spec/b"}, ks.Keys("spec"))
	assert.Equal(t, []string{"proc/x"}, ks.Keys("proc"))
}

func TestKeySetKeysIncludesBareNamespaceKey(t *testing.T) {
	ks := New()
	ks.SetValue("spec", "root")
	ks.SetValue("spec/a", "")

	assert.Equal(t, []string{"spec", "spec/a"}, ks.Keys("spec"))
}

func TestKeySetDump(t *testing.T) {
	ks := New()
	ks.SetValue("proc/items/#0", "a")
	ks.SetValue("proc/items/#1", "b")
	ks.SetValue("proc/items", "#1")

	dump := ks.Dump("proc")
	assert.Contains(t, dump, "proc/items/#0 = a\n")
	assert.Contains(t, dump, "proc/items/#1 = b\n")
	assert.Contains(t, dump, "proc/items = #1\n")
}
