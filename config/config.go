package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// SysConfig holds base runtime settings.
type SysConfig struct {
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// ApiConfig holds the remote product service settings.
type ApiConfig struct {
	// Origin is the base URL of the product service, without a
	// trailing slash, e.g. http://localhost:5000
	Origin string `yaml:"origin" json:"origin"`
	// UploadTimeoutSec bounds a single asset upload request.
	UploadTimeoutSec int `yaml:"upload_timeout_sec" json:"upload_timeout_sec"`
}

// SessionConfig holds the admin gate settings. The credential pair is a
// placeholder for a real authentication service. When PasswordHash is
// set it takes precedence over Password and must be a bcrypt hash.
type SessionConfig struct {
	Username     string `yaml:"username" json:"username"`
	Password     string `yaml:"password" json:"password"`
	PasswordHash string `yaml:"password_hash" json:"password_hash"`
	// Secret signs the locally persisted session token.
	Secret string `yaml:"secret" json:"secret"`
}

// ConsoleConfig holds console behaviour settings.
type ConsoleConfig struct {
	// AutoRefresh enables the periodic catalog refresh job.
	AutoRefresh bool `yaml:"auto_refresh" json:"auto_refresh"`
	// AutoRefreshSpec is a cron spec, e.g. "@every 60s".
	AutoRefreshSpec string `yaml:"auto_refresh_spec" json:"auto_refresh_spec"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
	Api     ApiConfig     `yaml:"api" json:"api"`
	Session SessionConfig `yaml:"session" json:"session"`
	Console ConsoleConfig `yaml:"console" json:"console"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Workdir:  "/var/adminconsole",
			Location: "Asia/Shanghai",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: true,
			Filename:   "/var/adminconsole/adminconsole.log",
		},
		Api: ApiConfig{
			Origin:           "http://localhost:5000",
			UploadTimeoutSec: 30,
		},
		Session: SessionConfig{
			Username: "admin",
			Password: "admin@123",
			Secret:   "9b6de5cc-admin-console-0769fa01",
		},
		Console: ConsoleConfig{
			AutoRefresh:     false,
			AutoRefreshSpec: "@every 60s",
		},
	}
}

// LoadConfig reads the YAML config file when it exists and applies
// environment overrides on top of the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig()
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}
	setEnvString(&cfg.System.Workdir, "ADMINCONSOLE_WORKDIR")
	setEnvString(&cfg.Logger.Mode, "ADMINCONSOLE_LOGGER_MODE")
	setEnvBool(&cfg.Logger.FileEnable, "ADMINCONSOLE_LOGGER_FILE_ENABLE")
	setEnvString(&cfg.Logger.Filename, "ADMINCONSOLE_LOGGER_FILENAME")
	setEnvString(&cfg.Api.Origin, "ADMINCONSOLE_API_ORIGIN")
	setEnvInt(&cfg.Api.UploadTimeoutSec, "ADMINCONSOLE_API_UPLOAD_TIMEOUT")
	setEnvString(&cfg.Session.Username, "ADMINCONSOLE_SESSION_USERNAME")
	setEnvString(&cfg.Session.Password, "ADMINCONSOLE_SESSION_PASSWORD")
	setEnvString(&cfg.Session.PasswordHash, "ADMINCONSOLE_SESSION_PASSWORD_HASH")
	setEnvString(&cfg.Session.Secret, "ADMINCONSOLE_SESSION_SECRET")
	setEnvBool(&cfg.Console.AutoRefresh, "ADMINCONSOLE_AUTO_REFRESH")
	setEnvString(&cfg.Console.AutoRefreshSpec, "ADMINCONSOLE_AUTO_REFRESH_SPEC")
	return cfg
}

// SessionDBPath returns the path of the local session database under
// the configured workdir.
func (c *AppConfig) SessionDBPath() string {
	return filepath.Join(c.System.Workdir, "session.db")
}

func (c *AppConfig) UploadTimeout() int {
	if c.Api.UploadTimeoutSec <= 0 {
		return 30
	}
	return c.Api.UploadTimeoutSec
}

func setEnvString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setEnvBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = cast.ToBool(v)
	}
}

func setEnvInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = cast.ToInt(v)
	}
}
