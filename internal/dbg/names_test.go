package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type handle struct{ a, b uint32 }

func TestName(t *testing.T) {
	defer Forget()

	first := Name(handle{1, 1})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(handle{1, 1}))
	assert.Equal(t, "Ø", Name(nil))

	Name(handle{2, 1})
	assert.Equal(t, 2, Len())

	Forget()
	assert.Zero(t, Len())
	assert.NotEmpty(t, Name(handle{1, 1}))
}
