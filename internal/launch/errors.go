package launch

import "fmt"

// The launch script is missing or could not be stat'd
type ScriptNotFoundError struct {
	Path string
	Err  error
}

func (scriptNotFoundError *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("launcher script not found at %s", scriptNotFoundError.Path)
}

func (scriptNotFoundError *ScriptNotFoundError) Unwrap() error {
	return scriptNotFoundError.Err
}

// The resources folder could not become the working directory
type ChdirError struct {
	Path string
	Err  error
}

func (chdirError *ChdirError) Error() string {
	return fmt.Sprintf("could not change to resources directory %s", chdirError.Path)
}

func (chdirError *ChdirError) Unwrap() error {
	return chdirError.Err
}

// The image replacement call returned control
type ExecError struct {
	Path string
	Err  error
}

func (execError *ExecError) Error() string {
	return fmt.Sprintf("failed to execute launcher script %s", execError.Path)
}

func (execError *ExecError) Unwrap() error {
	return execError.Err
}
