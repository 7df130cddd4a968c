// Package where resolves the directories colorful keeps its files in.
package where

import (
	"os"
	"path/filepath"

	"github.com/colorful-cli/colorful/constant"
	"github.com/colorful-cli/colorful/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "COLORFUL_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding colorful.toml, created if missing.
// It is $COLORFUL_CONFIG_PATH when set, otherwise colorful under the user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Colorful))
}

// ConfigFile is the path of the configuration file, which may not exist yet.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Colorful+".toml")
}

// Logs is the directory log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}
