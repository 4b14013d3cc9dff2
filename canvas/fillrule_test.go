package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRuleFromFlag(t *testing.T) {
	assert.Equal(t, "nonzero", FillRuleFromFlag(0).String())
	for _, flag := range []int32{1, 2, 3, -1, 255} {
		assert.Equal(t, EvenOdd, FillRuleFromFlag(flag), "flag %d", flag)
		assert.Equal(t, "evenodd", FillRuleFromFlag(flag).String(), "flag %d", flag)
	}
}
