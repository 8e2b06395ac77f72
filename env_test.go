package libopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d3nwp/libopts"
)

func TestParseEnviron(t *testing.T) {
	got := libopts.ParseEnviron([]string{"FOO=bar", "PATH=/a:/b", "EMPTY="})
	assert.Equal(t, "bar", got["FOO"])
	assert.Equal(t, "/a:/b", got["PATH"])
	assert.Equal(t, "", got["EMPTY"])
}

func TestParseEnvironKeepsFirstEqualsOnly(t *testing.T) {
	got := libopts.ParseEnviron([]string{"X=a=b=c"})
	assert.Equal(t, "a=b=c", got["X"])
}

func TestParseEnvironLastWriteWins(t *testing.T) {
	got := libopts.ParseEnviron([]string{"X=first", "X=second"})
	assert.Equal(t, "second", got["X"])
}

func TestSplitPathList(t *testing.T) {
	got := libopts.SplitPathList("/a" + libopts.PathListSeparator + "/b" + libopts.PathListSeparator)
	assert.Equal(t, []string{"/a", "/b", ""}, got)
}
