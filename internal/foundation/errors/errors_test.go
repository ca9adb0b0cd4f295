package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "site.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())
		assert.Equal(t, "[config:fatal] invalid configuration", err.Error())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "site.yaml", file)
	})

	t.Run("Wrapping keeps the cause", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := WrapError(cause, CategoryFileSystem, "write page").Warning().Build()

		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, SeverityWarning, err.Severity())
		assert.False(t, err.IsFatal())
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("WithContext does not mutate the original", func(t *testing.T) {
		base := BuildError("stage failed").Build()
		derived := base.WithContext("stage", "render")

		_, ok := base.Context().Get("stage")
		assert.False(t, ok)
		stage, _ := derived.Context().GetString("stage")
		assert.Equal(t, "render", stage)
	})
}

func TestCategoryHelpers(t *testing.T) {
	err := fmt.Errorf("build: %w", LinkError("3 broken links").Build())

	assert.True(t, HasCategory(err, CategoryLinks))
	assert.False(t, HasCategory(err, CategoryConfig))
	assert.Equal(t, CategoryLinks, GetCategory(err))
	assert.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))

	target := LinkError("3 broken links").Build()
	assert.True(t, errors.Is(err, target))
}

func TestErrorContextMerge(t *testing.T) {
	a := ErrorContext{"x": 1, "y": 2}
	b := ErrorContext{"y": 3}

	merged := a.Merge(b)
	assert.Equal(t, ErrorContext{"x": 1, "y": 3}, merged)
	assert.Equal(t, 2, a["y"])

	var empty ErrorContext
	assert.Equal(t, ErrorContext{"k": "v"}, empty.Set("k", "v"))
}
