package rangeallocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUp(t *testing.T) {
	assert.Equal(t, uint64(0), roundUp(0, 64))
	assert.Equal(t, uint64(64), roundUp(1, 64))
	assert.Equal(t, uint64(64), roundUp(63, 64))
	assert.Equal(t, uint64(64), roundUp(64, 64))
	assert.Equal(t, uint64(128), roundUp(65, 64))
}

func TestRoundDown(t *testing.T) {
	assert.Equal(t, uint64(0), roundDown(0, 64))
	assert.Equal(t, uint64(0), roundDown(63, 64))
	assert.Equal(t, uint64(64), roundDown(64, 64))
	assert.Equal(t, uint64(64), roundDown(127, 64))
	assert.Equal(t, uint64(128), roundDown(128, 64))
}

func TestAligned(t *testing.T) {
	assert.True(t, aligned(0, 64))
	assert.True(t, aligned(64, 64))
	assert.True(t, aligned(128, 64))
	assert.False(t, aligned(1, 64))
	assert.False(t, aligned(63, 64))
}
