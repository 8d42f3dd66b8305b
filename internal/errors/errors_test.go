package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsChain(t *testing.T) {
	wrapped := Wrapf(Wrap(errSentinel, "load stay"), "package %s", "abc")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "package abc: load stay: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsChain")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestJoinAndAs(t *testing.T) {
	target := &customError{code: 7}
	joined := Join(errSentinel, WithMessage(target, "context"))

	var got *customError
	assert.True(t, As(joined, &got))
	assert.Equal(t, 7, got.code)
	assert.True(t, Is(joined, errSentinel))
	assert.Nil(t, Unwrap(errSentinel))
}

type customError struct{ code int }

func (e *customError) Error() string { return fmt.Sprintf("code %d", e.code) }
