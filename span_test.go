package rangeallocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_End(t *testing.T) {
	s := &Span{base: 0x1000, length: 0x100}
	assert.Equal(t, uint64(0x1100), s.end())
}

func TestSpan_Contains(t *testing.T) {
	s := &Span{base: 0x1000, length: 0x100}

	assert.True(t, s.contains(0x1000, 0x100))
	assert.True(t, s.contains(0x1050, 0x10))
	assert.False(t, s.contains(0x0f00, 0x100))
	assert.False(t, s.contains(0x1050, 0x100))
}

func TestSpan_AdjacentBefore(t *testing.T) {
	s := &Span{base: 0x1000, length: 0x100}

	assert.True(t, s.adjacentBefore(0x0f00, 0x100))
	assert.False(t, s.adjacentBefore(0x0e00, 0x100))
}

func TestSpan_AdjacentAfter(t *testing.T) {
	s := &Span{base: 0x1000, length: 0x100}

	assert.True(t, s.adjacentAfter(0x1100, 0x10))
	assert.False(t, s.adjacentAfter(0x1200, 0x10))
}

func TestSpan_Reset(t *testing.T) {
	other := &Span{}
	s := &Span{base: 0x1000, length: 0x100, next: other, prev: other}
	s.reset()

	assert.Equal(t, uint64(0), s.base)
	assert.Equal(t, uint64(0), s.length)
	assert.Nil(t, s.next)
	assert.Nil(t, s.prev)
}
