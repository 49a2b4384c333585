package launch

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"sshpilot.dev/launcher/internal/bundle"
)

// Process image replacement primitive. Tests swap it to keep running after a
// transition; unix.Exec never returns on success.
var execImage = unix.Exec

// Preflight checks that the launch script exists before the process commits
// to the transition. Existence only: whether the entry is actually runnable
// is left to the exec attempt itself.
func Preflight(scriptPath string) error {
	if _, err := os.Stat(scriptPath); err != nil {
		return &ScriptNotFoundError{Path: scriptPath, Err: err}
	}
	return nil
}

// Transition makes the resources folder the working directory, then replaces
// the process image with the launch script. The script receives its own path
// as the only argument and inherits the environment unmodified. On success
// the call never returns; a ChdirError means no exec was attempted.
func Transition(paths bundle.Paths) error {
	if err := os.Chdir(paths.Resources); err != nil {
		return &ChdirError{Path: paths.Resources, Err: err}
	}
	log.Debugf("Replacing process image with %s from %s", paths.Script, paths.Resources)
	err := execImage(paths.Script, []string{paths.Script}, os.Environ())
	return &ExecError{Path: paths.Script, Err: err}
}
