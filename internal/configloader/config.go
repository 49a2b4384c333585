package configloader

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"sshpilot.dev/launcher/internal/bundle"
)

// Structure to bind application parameters
type Config struct {
	LogLevel       string `mapstructure:"LOG_LEVEL"`       // logrus library log level to be assigned
	ContentsMarker string `mapstructure:"CONTENTS_MARKER"` // Bundle layout override, see the bundle package
	ResourcesPath  string `mapstructure:"RESOURCES_PATH"`  // Bundle layout override, see the bundle package
	ScriptName     string `mapstructure:"SCRIPT_NAME"`     // Bundle layout override, see the bundle package
}

// Initialize default parameters values. The launcher stays quiet unless a
// higher log level is requested.
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "error")
	viper.SetDefault("CONTENTS_MARKER", bundle.CONTENTS_MARKER)
	viper.SetDefault("RESOURCES_PATH", bundle.RESOURCES_FOLDER_PATH)
	viper.SetDefault("SCRIPT_NAME", bundle.LAUNCH_SCRIPT_NAME)
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Warn(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}

// Layout assembles the bundle folders convention from the configuration
func (config Config) Layout() bundle.Layout {
	return bundle.Layout{
		ContentsMarker: config.ContentsMarker,
		ResourcesPath:  config.ResourcesPath,
		ScriptName:     config.ScriptName,
	}
}
