package bundle

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Bundle structure convention produced by the packaging tooling
const CONTENTS_MARKER = "/Contents/"
const RESOURCES_FOLDER_PATH = "Contents/Resources"
const LAUNCH_SCRIPT_NAME = "launcher.sh"

// Structure to bind the bundle folders convention
type Layout struct {
	ContentsMarker string `toml:"contents_marker"` // Boundary between the outer bundle package and its Contents tree
	ResourcesPath  string `toml:"resources_path"`  // Resources folder below the bundle root
	ScriptName     string `toml:"script_name"`     // Launch script name inside the resources folder
}

// Initialize the layout with the packaging convention values
func DefaultLayout() Layout {
	return Layout{
		ContentsMarker: CONTENTS_MARKER,
		ResourcesPath:  RESOURCES_FOLDER_PATH,
		ScriptName:     LAUNCH_SCRIPT_NAME,
	}
}

// Load a layout manifest file. Fields missing from the manifest keep their
// convention values.
func LoadLayout(manifestPath string) (layout Layout, err error) {
	layout = DefaultLayout()
	_, err = toml.DecodeFile(manifestPath, &layout)
	return
}

// Save the layout to a manifest file
func (layout Layout) Save(manifestPath string) (err error) {
	var file *os.File
	if file, err = os.Create(manifestPath); err != nil {
		return
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(layout)
}
