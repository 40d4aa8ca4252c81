package foundation

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	t.Parallel()

	some := Some(7)
	none := None[int]()

	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	assert.True(t, none.IsNone())

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = none.Get()
	assert.False(t, ok)

	assert.Equal(t, 7, some.Unwrap())
	assert.Equal(t, 3, none.UnwrapOr(3))
	assert.Panics(t, func() { none.Unwrap() })
}

func TestMapOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("7"), MapOption(Some(7), strconv.Itoa))
	assert.True(t, MapOption(None[int](), strconv.Itoa).IsNone())
}

func TestPointerConversion(t *testing.T) {
	t.Parallel()

	v := 5
	assert.Equal(t, Some(5), FromPointer(&v))
	assert.True(t, FromPointer[int](nil).IsNone())

	assert.Nil(t, None[int]().ToPointer())
	p := Some(9).ToPointer()
	if assert.NotNil(t, p) {
		assert.Equal(t, 9, *p)
	}
}
