package rangeallocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanList_Init(t *testing.T) {
	l := &spanList{}
	l.init()

	assert.Equal(t, &l.root, l.root.next)
	assert.Equal(t, &l.root, l.root.prev)
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
}

func TestSpanList_InsertAfter_Front(t *testing.T) {
	l := &spanList{}
	l.init()

	s := &Span{base: 0x1000, length: 0x100}
	l.insertAfter(s, &l.root)

	assert.Equal(t, s, l.Front())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, &l.root, s.next)
	assert.Equal(t, &l.root, s.prev)
}

func TestSpanList_InsertAfter_Order(t *testing.T) {
	l := &spanList{}
	l.init()

	low := &Span{base: 0x1000, length: 0x100}
	high := &Span{base: 0x2000, length: 0x100}

	l.insertAfter(low, &l.root)
	l.insertAfter(high, low)

	assert.Equal(t, low, l.Front())
	assert.Equal(t, high, low.next)
	assert.Equal(t, low, high.prev)
	assert.Equal(t, &l.root, high.next)
	assert.Equal(t, 2, l.Len())
}

func TestSpanList_Remove(t *testing.T) {
	l := &spanList{}
	l.init()

	a := &Span{base: 0x1000, length: 0x100}
	b := &Span{base: 0x2000, length: 0x100}
	l.insertAfter(a, &l.root)
	l.insertAfter(b, a)

	l.remove(a)

	assert.Equal(t, b, l.Front())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, &l.root, b.prev)
}

func TestSpanList_ForEach(t *testing.T) {
	l := &spanList{}
	l.init()

	a := &Span{base: 0x1000, length: 0x100}
	b := &Span{base: 0x2000, length: 0x100}
	l.insertAfter(a, &l.root)
	l.insertAfter(b, a)

	var seen []uint64
	l.forEach(func(s *Span) { seen = append(seen, s.base) })

	assert.Equal(t, []uint64{0x1000, 0x2000}, seen)
}
