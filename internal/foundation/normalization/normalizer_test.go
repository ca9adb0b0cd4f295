package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type policy string

func newPolicyNormalizer() *Normalizer[policy] {
	return NewNormalizer(map[string]policy{
		"ignore": "ignore",
		"warn":   "warn",
		"throw":  "throw",
	}, "warn")
}

func TestNormalizeFoldsCaseAndSpace(t *testing.T) {
	n := newPolicyNormalizer()
	assert.Equal(t, policy("throw"), n.Normalize("  THROW "))
	assert.Equal(t, policy("ignore"), n.Normalize("Ignore"))
	assert.Equal(t, policy("warn"), n.Normalize("unknown"))
}

func TestNormalizeWithError(t *testing.T) {
	n := newPolicyNormalizer()

	v, err := n.NormalizeWithError("warn")
	require.NoError(t, err)
	assert.Equal(t, policy("warn"), v)

	_, err = n.NormalizeWithError("explode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[ignore throw warn]")
}

func TestValidKeysIsACopy(t *testing.T) {
	n := newPolicyNormalizer()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"ignore", "throw", "warn"}, n.ValidKeys())
}
