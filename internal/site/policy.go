package site

import (
	"gopkg.in/yaml.v3"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/normalization"
)

// BrokenLinkPolicy decides what an unresolvable internal link does to a build.
type BrokenLinkPolicy string

const (
	BrokenLinksIgnore BrokenLinkPolicy = "ignore"
	BrokenLinksLog    BrokenLinkPolicy = "log"
	BrokenLinksWarn   BrokenLinkPolicy = "warn"
	BrokenLinksThrow  BrokenLinkPolicy = "throw"
)

var brokenLinkPolicies = normalization.NewNormalizer(map[string]BrokenLinkPolicy{
	"ignore": BrokenLinksIgnore,
	"log":    BrokenLinksLog,
	"warn":   BrokenLinksWarn,
	"throw":  BrokenLinksThrow,
	"fail":   BrokenLinksThrow,
}, BrokenLinksWarn)

// ParseBrokenLinkPolicy accepts any casing and "fail" as an alias of "throw".
func ParseBrokenLinkPolicy(raw string) (BrokenLinkPolicy, error) {
	return brokenLinkPolicies.NormalizeWithError(raw)
}

// FailsBuild reports whether broken links abort the build under this policy.
func (p BrokenLinkPolicy) FailsBuild() bool { return p == BrokenLinksThrow }

// UnmarshalYAML normalizes the policy name. Unknown names are kept verbatim so
// Validate can report them with their config path.
func (p *BrokenLinkPolicy) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if parsed, err := ParseBrokenLinkPolicy(raw); err == nil {
		*p = parsed
		return nil
	}
	*p = BrokenLinkPolicy(raw)
	return nil
}
