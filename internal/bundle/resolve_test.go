package bundle_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"sshpilot.dev/launcher/internal/bundle"
)

func createBundleTree(t *testing.T) (bundleRoot string, executablePath string) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	bundleRoot = filepath.Join(root, "sshPilot.app")
	macosPath := filepath.Join(bundleRoot, "Contents", "MacOS")
	if err := os.MkdirAll(macosPath, 0755); err != nil {
		t.Fatal(err)
	}
	executablePath = filepath.Join(macosPath, "sshPilot")
	if err := os.WriteFile(executablePath, []byte("stub"), 0755); err != nil {
		t.Fatal(err)
	}
	return
}

func TestResolveInsideBundle(t *testing.T) {
	bundleRoot, executablePath := createBundleTree(t)

	paths, err := bundle.DefaultLayout().Resolve(executablePath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, executablePath, paths.Executable)
	assert.Equal(t, bundleRoot, paths.AppRoot)
	assert.Equal(t, filepath.Join(bundleRoot, "Contents", "Resources"), paths.Resources)
	assert.Equal(t, filepath.Join(bundleRoot, "Contents", "Resources", "launcher.sh"), paths.Script)
}

func TestResolveSymlinkedExecutable(t *testing.T) {
	bundleRoot, executablePath := createBundleTree(t)
	linkPath := filepath.Join(filepath.Dir(bundleRoot), "sshPilot")
	if err := os.Symlink(executablePath, linkPath); err != nil {
		t.Fatal(err)
	}

	paths, err := bundle.DefaultLayout().Resolve(linkPath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, executablePath, paths.Executable)
	assert.Equal(t, bundleRoot, paths.AppRoot)
}

func TestResolveRelativePath(t *testing.T) {
	bundleRoot, executablePath := createBundleTree(t)
	previousFolder, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(previousFolder)
	if err := os.Chdir(filepath.Dir(executablePath)); err != nil {
		t.Fatal(err)
	}

	paths, err := bundle.DefaultLayout().Resolve("./sshPilot")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, executablePath, paths.Executable)
	assert.Equal(t, bundleRoot, paths.AppRoot)
}

// An executable living outside any bundle keeps its whole path as bundle
// root, so the script location is derived below the executable itself and
// can never exist.
func TestResolveWithoutMarker(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	executablePath := filepath.Join(root, "sshPilot")
	if err := os.WriteFile(executablePath, []byte("stub"), 0755); err != nil {
		t.Fatal(err)
	}

	paths, err := bundle.DefaultLayout().Resolve(executablePath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, executablePath, paths.AppRoot)
	assert.Equal(t, filepath.Join(executablePath, "Contents", "Resources"), paths.Resources)
	assert.Equal(t, filepath.Join(executablePath, "Contents", "Resources", "launcher.sh"), paths.Script)
}

func TestResolveMissingExecutable(t *testing.T) {
	invocationPath := filepath.Join(t.TempDir(), "unexistent")

	_, err := bundle.DefaultLayout().Resolve(invocationPath)
	var resolutionError *bundle.ResolutionError
	if !errors.As(err, &resolutionError) {
		t.Fatalf("Expected a resolution error, got %v", err)
	}
	assert.Contains(t, resolutionError.Error(), invocationPath)
}

func TestResolveCustomMarker(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	executablePath := filepath.Join(root, "sshPilot.app", "Custom", "Binaries", "sshPilot")
	if err := os.MkdirAll(filepath.Dir(executablePath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(executablePath, []byte("stub"), 0755); err != nil {
		t.Fatal(err)
	}

	layout := bundle.Layout{
		ContentsMarker: "/Custom/",
		ResourcesPath:  "Custom/Files",
		ScriptName:     "start.sh",
	}
	paths, err := layout.Resolve(executablePath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, filepath.Join(root, "sshPilot.app"), paths.AppRoot)
	assert.Equal(t, filepath.Join(root, "sshPilot.app", "Custom", "Files", "start.sh"), paths.Script)
}
