package build

// Status represents the outcome of a build execution.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusWarning   Status = "warning"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// IsSuccess reports whether the build produced a usable site.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess || s == StatusWarning
}

// Stage names, in execution order.
const (
	StageValidate = "validate"
	StageClean    = "clean"
	StageStatic   = "static"
	StageAssets   = "assets"
	StageRender   = "render"
	StageContent  = "content"
	StageLinks    = "links"
)
