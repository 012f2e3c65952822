package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces the process environment variables
const EnvPrefix = "YOINKTUBE"

// Runtime configuration keys, read from YOINKTUBE_<KEY>
const (
	RuntimeLogLevel    = "log_level"
	RuntimeYTDLPPath   = "ytdlp_path"
	RuntimeAutoInstall = "auto_install"
	RuntimeHistoryDB   = "history_db"
)

// Default runtime values
const (
	DefaultLogLevel    = "info"
	DefaultAutoInstall = false
	AppDirName         = "yoinktube"
	HistoryDBFile      = "history.db"
)

// Runtime holds process configuration that is not a user preference
type Runtime struct {
	LogLevel    string
	YTDLPPath   string
	AutoInstall bool
	HistoryDB   string
}

// LoadRuntime reads the process configuration from the environment
func LoadRuntime() Runtime {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(RuntimeLogLevel, DefaultLogLevel)
	v.SetDefault(RuntimeYTDLPPath, "")
	v.SetDefault(RuntimeAutoInstall, DefaultAutoInstall)
	v.SetDefault(RuntimeHistoryDB, defaultHistoryDB())

	return Runtime{
		LogLevel:    v.GetString(RuntimeLogLevel),
		YTDLPPath:   v.GetString(RuntimeYTDLPPath),
		AutoInstall: v.GetBool(RuntimeAutoInstall),
		HistoryDB:   v.GetString(RuntimeHistoryDB),
	}
}

// defaultHistoryDB places the history database in the user config directory
func defaultHistoryDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppDirName, HistoryDBFile)
}
