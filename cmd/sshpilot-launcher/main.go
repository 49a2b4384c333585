package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"sshpilot.dev/launcher/internal/bundle"
	"sshpilot.dev/launcher/internal/configloader"
	"sshpilot.dev/launcher/internal/launch"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "sshpilot"

// The launcher recognizes no flags or subcommands: the only meaningful input
// is the invocation path the OS supplies as argument zero. Every failure is
// terminal and exits with status 1; on success the process image is replaced
// and the exit code belongs to the launched script.
func main() {
	layout := bundle.DefaultLayout()
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, "")
	if err != nil {
		logrus.Warn(err.Error())
	} else {
		if level, parseError := logrus.ParseLevel(configuration.LogLevel); parseError == nil {
			logrus.SetLevel(level)
		}
		layout = configuration.Layout()
	}

	paths, err := layout.Resolve(os.Args[0])
	if err != nil {
		fail(err)
	}
	if err = launch.Preflight(paths.Script); err != nil {
		fail(err)
	}

	// Transition only returns when the image replacement failed
	fail(launch.Transition(paths))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
