package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestWrapPreservesSentinel(t *testing.T) {
	sentinel := New("boom")
	wrapped := Wrapf(sentinel, "step %d", 2)

	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "step 2: boom", wrapped.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestIsAny(t *testing.T) {
	first, second, other := New("first"), New("second"), New("other")
	err := WithStack(second)

	assert.True(t, IsAny(err, first, second))
	assert.False(t, IsAny(err, first, other))
	assert.False(t, IsAny(err))
}

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: 7}, "lookup")

	coded, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, coded.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}
