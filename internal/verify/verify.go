package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"sshpilot.dev/launcher/internal/bundle"
)

// Conventional entries inspected beside the layout-derived ones
const MACOS_FOLDER_NAME = "MacOS"
const INFO_PLIST_NAME = "Info.plist"

// Outcome of a single validation step. Err is nil when the check passed.
type Check struct {
	Name string
	Path string
	Err  error
}

// Report of a bundle validation run
type Report struct {
	BundleRoot string
	Checks     []Check
}

func (report Report) Successful() bool {
	for _, check := range report.Checks {
		if check.Err != nil {
			return false
		}
	}
	return true
}

func (report Report) Failures() (failures []Check) {
	for _, check := range report.Checks {
		if check.Err != nil {
			failures = append(failures, check)
		}
	}
	return
}

// Bundle statically validates an application bundle folder against the
// layout convention, without running anything inside it. Every check is
// performed even after a failure so the report lists all the problems at
// once.
func Bundle(bundleRoot string, layout bundle.Layout) (report Report) {
	report.BundleRoot = bundleRoot

	contentsPath := filepath.Join(bundleRoot, strings.Trim(layout.ContentsMarker, "/"))
	resourcesPath := filepath.Join(bundleRoot, layout.ResourcesPath)
	scriptPath := filepath.Join(resourcesPath, layout.ScriptName)

	report.Checks = append(report.Checks,
		checkFolder("bundle root", bundleRoot),
		checkFolder("contents folder", contentsPath),
		checkFile("bundle manifest", filepath.Join(contentsPath, INFO_PLIST_NAME)),
		checkStub("launcher stub", filepath.Join(contentsPath, MACOS_FOLDER_NAME)),
		checkFolder("resources folder", resourcesPath),
		checkExecutable("launch script", scriptPath))

	for _, check := range report.Checks {
		if check.Err != nil {
			log.Debugf("Check %s failed on %s: %v", check.Name, check.Path, check.Err)
		}
	}
	return
}

func checkFolder(name string, path string) Check {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a folder", path)
	}
	return Check{Name: name, Path: path, Err: err}
}

func checkFile(name string, path string) Check {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = fmt.Errorf("%s is a folder", path)
	}
	return Check{Name: name, Path: path, Err: err}
}

func checkExecutable(name string, path string) Check {
	check := checkFile(name, path)
	if check.Err != nil {
		return check
	}
	if info, err := os.Stat(path); err == nil && info.Mode()&0111 == 0 {
		check.Err = fmt.Errorf("%s is not executable", path)
	}
	return check
}

// The stub check passes when the folder holds at least one executable entry,
// whatever its name: the packaging tooling names the stub after the
// application.
func checkStub(name string, folderPath string) Check {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return Check{Name: name, Path: folderPath, Err: err}
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if info, infoError := entry.Info(); infoError == nil && info.Mode()&0111 != 0 {
			return Check{Name: name, Path: filepath.Join(folderPath, entry.Name())}
		}
	}
	return Check{Name: name, Path: folderPath, Err: errors.New("no executable stub found")}
}
