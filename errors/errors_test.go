package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "set source.manifest to a local file")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "set source.manifest to a local file", hints[0])
}

func TestNewInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("render.indent must not be empty, got %q", "")

	assert.True(t, Is(err, ErrInvalidConfig))
	assert.False(t, Is(err, ErrFetchFailed))
	assert.Equal(t, `render.indent must not be empty, got ""`, err.Error())
}

func TestWrapFetchFailed(t *testing.T) {
	base := New("connection refused")
	err := WrapFetchFailed(base, "GET /users")

	assert.True(t, Is(err, ErrFetchFailed))
	assert.True(t, Is(err, base))
	assert.Equal(t, "GET /users: connection refused", err.Error())
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
}

func ExampleWrap() {
	baseErr := New("connection failed")
	err := Wrap(baseErr, "failed to fetch resource listing")
	fmt.Println(err)
	// Output: failed to fetch resource listing: connection failed
}
