package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
)

func TestOption(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		o := Some("app-id")
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, "app-id", v)
		assert.True(t, o.IsSome())
		assert.Equal(t, "app-id", o.Unwrap())
		assert.Equal(t, "Some(app-id)", o.String())
	})

	t.Run("None", func(t *testing.T) {
		o := None[string]()
		assert.True(t, o.IsNone())
		assert.Equal(t, "fallback", o.UnwrapOr("fallback"))
		assert.Nil(t, o.ToPointer())
		assert.Equal(t, "None", o.String())
		assert.Panics(t, func() { o.Unwrap() })
	})

	t.Run("Some of empty string is still present", func(t *testing.T) {
		o := Some("")
		assert.True(t, o.IsSome())
	})
}

func TestNonBlank(t *testing.T) {
	assert.True(t, NonBlank("").IsNone())
	assert.True(t, NonBlank("   ").IsNone())
	assert.Equal(t, "abc", NonBlank("  abc\n").Unwrap())
}

func TestMapAndFlatMap(t *testing.T) {
	length := MapOption(Some("four"), func(s string) int { return len(s) })
	assert.Equal(t, 4, length.Unwrap())
	assert.True(t, MapOption(None[string](), func(s string) int { return len(s) }).IsNone())

	positive := func(n int) Option[int] {
		if n > 0 {
			return Some(n)
		}
		return None[int]()
	}
	assert.True(t, FlatMapOption(Some(0), positive).IsNone())
	assert.Equal(t, 3, FlatMapOption(Some(3), positive).Unwrap())
}

func TestPointerRoundTrip(t *testing.T) {
	v := 42
	o := FromPointer(&v)
	require.True(t, o.IsSome())
	p := o.ToPointer()
	*p = 7
	assert.Equal(t, 42, o.Unwrap())
	assert.True(t, FromPointer[int](nil).IsNone())
}

func TestValidationResult(t *testing.T) {
	var vr ValidationResult
	assert.True(t, vr.Valid())
	assert.NoError(t, vr.ToError("invalid site configuration"))

	vr.Add("navbar.items[2]", "target", "sets both %s and %s", "path", "url")
	var other ValidationResult
	other.Add("footer.groups[0].items[1]", "target", "sets neither path nor url")
	vr.Merge(other)

	require.False(t, vr.Valid())
	assert.Equal(t, []string{"navbar.items[2]", "footer.groups[0].items[1]"}, vr.Fields())

	err := vr.ToError("invalid site configuration")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "navbar.items[2]: sets both path and url")
	assert.Contains(t, err.Error(), "footer.groups[0].items[1]: sets neither path nor url")
}
