package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"sshpilot.dev/launcher/internal/bundle"
	"sshpilot.dev/launcher/internal/configloader"
	"sshpilot.dev/launcher/internal/verify"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "sshpilot"

func main() {
	// Parsing the command line arguments to change settings and layout file locations
	configurationFilePath := flag.String("config", "", "Configuration file path")
	layoutManifestPath := flag.String("layout", "", "Bundle layout manifest path")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: bundlecheck [-config file] [-layout manifest] <bundle folder>")
		os.Exit(1)
	}

	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}

	layout := configuration.Layout()
	if *layoutManifestPath != "" {
		if layout, err = bundle.LoadLayout(*layoutManifestPath); err != nil {
			logrus.Errorf("%+v", err)
			os.Exit(1)
		}
		logrus.Infof("Loaded layout manifest %s", *layoutManifestPath)
	}

	report := verify.Bundle(flag.Arg(0), layout)
	for _, check := range report.Checks {
		if check.Err != nil {
			fmt.Printf("FAIL %-16s %s: %v\n", check.Name, check.Path, check.Err)
		} else {
			fmt.Printf("ok   %-16s %s\n", check.Name, check.Path)
		}
	}
	if !report.Successful() {
		os.Exit(1)
	}
}
