package libopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d3nwp/libopts"
)

func TestHasArgString(t *testing.T) {
	assert.Equal(t, "none", libopts.ArgNone.String())
	assert.Equal(t, "optional", libopts.ArgOptional.String())
	assert.Equal(t, "required", libopts.ArgRequired.String())
}
