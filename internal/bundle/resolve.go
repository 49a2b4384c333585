package bundle

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Absolute paths derived from the running executable location. A Paths value
// is built in a single step and never mutated afterwards.
type Paths struct {
	Executable string
	AppRoot    string
	Resources  string
	Script     string
}

// The invocation path could not be canonicalized
type ResolutionError struct {
	Path string
	Err  error
}

func (resolutionError *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve executable path %s", resolutionError.Path)
}

func (resolutionError *ResolutionError) Unwrap() error {
	return resolutionError.Err
}

// Resolve canonicalizes the invocation path and derives the bundle root, the
// resources folder and the launch script location. When the path carries no
// contents marker the whole executable path becomes the bundle root; the
// inconsistency surfaces later, when the script cannot be found there.
func (layout Layout) Resolve(invocationPath string) (paths Paths, err error) {
	absolutePath, err := filepath.Abs(invocationPath)
	if err != nil {
		return Paths{}, &ResolutionError{Path: invocationPath, Err: err}
	}
	executablePath, err := filepath.EvalSymlinks(absolutePath)
	if err != nil {
		return Paths{}, &ResolutionError{Path: invocationPath, Err: err}
	}

	appRoot := executablePath
	if markerIndex := strings.Index(executablePath, layout.ContentsMarker); markerIndex >= 0 {
		appRoot = executablePath[:markerIndex]
	}

	paths = Paths{
		Executable: executablePath,
		AppRoot:    appRoot,
		Resources:  filepath.Join(appRoot, layout.ResourcesPath),
		Script:     filepath.Join(appRoot, layout.ResourcesPath, layout.ScriptName),
	}
	log.Debugf("Resolved bundle root %s for executable %s", paths.AppRoot, paths.Executable)
	return paths, nil
}
