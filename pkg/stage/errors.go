package stage

import "fmt"

// CopyError reports a failure while copying a single tool file into scratch
// space.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy failed: %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// ToolDirError reports that the tool directory could not be read at all.
type ToolDirError struct {
	Path string
	Err  error
}

func (e *ToolDirError) Error() string {
	return fmt.Sprintf("tool directory unreadable: %s: %v", e.Path, e.Err)
}

func (e *ToolDirError) Unwrap() error {
	return e.Err
}
