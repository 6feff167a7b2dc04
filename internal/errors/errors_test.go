package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrTheme, "Theme not found", "Run 'shimmer themes' to list available themes")

	assert.Equal(t, ErrTheme, err.Code)
	assert.Contains(t, err.Error(), "✗ Theme not found")
	assert.Contains(t, err.Error(), "Run 'shimmer themes'")
	assert.Nil(t, err.Cause)
}

func TestWrap_DefaultsToConfigCode(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := Wrap(cause, "Failed to read config file")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Contains(t, err.Error(), "Failed to read config file")
	assert.Contains(t, err.Error(), "mapping values are not allowed")
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("band size cannot be negative")
	err := WrapWithCode(cause, ErrRender, "Invalid effect configuration", "Use a band size of 0 or larger")

	assert.Equal(t, ErrRender, err.Code)
	assert.Contains(t, err.Error(), "Invalid effect configuration")
	assert.Contains(t, err.Error(), "Use a band size of 0 or larger")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapper")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := New(ErrTheme, "bad theme", "")

	assert.True(t, IsCode(err, ErrTheme))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrTheme))
	assert.False(t, IsCode(errors.New("plain"), ErrTheme))
}

func TestIsCode_WrappedDeeper(t *testing.T) {
	inner := New(ErrRender, "render failed", "")
	outer := fmt.Errorf("outer: %w", inner)

	assert.True(t, IsCode(outer, ErrRender))
}

func TestErrorFormat_NoSuggestionNoCause(t *testing.T) {
	err := New(ErrConfig, "just a message", "")
	assert.Equal(t, "✗ just a message\n", err.Error())
}
