package domain

// InstallError reports a failed provisioning of Tool. It matches
// ErrInstallFailed with errors.Is and unwraps to the step that failed.
type InstallError struct {
	Tool  string
	Cause error
}

// NewInstallError wraps cause as a failed installation of tool.
func NewInstallError(tool string, cause error) error {
	return &InstallError{Tool: tool, Cause: cause}
}

func (e *InstallError) Error() string {
	return e.Message() + ": " + e.Cause.Error()
}

// Message returns the error text without its cause.
func (e *InstallError) Message() string {
	return ErrInstallFailed.Error() + " " + e.Tool
}

// Is reports whether target is ErrInstallFailed.
func (e *InstallError) Is(target error) bool {
	return target == ErrInstallFailed
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}
