package config

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvBinding         = "LOGFACADE_BINDING"
	EnvFile            = "LOGFACADE_FILE"
	EnvTee             = "LOGFACADE_TEE"
	EnvLevel           = "LOGFACADE_LEVEL"
	EnvFormat          = "LOGFACADE_FORMAT"
	EnvPrintLevel      = "LOGFACADE_PRINT_LEVEL"
	EnvTimestampFormat = "LOGFACADE_TIMESTAMP_FORMAT"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// FromEnv overlays LOGFACADE_* environment variables onto cfg. Unset or
// empty variables leave the field alone; an unparsable LOGFACADE_TEE is
// ignored.
func FromEnv(r Reader, cfg *Config) {
	if v := r.Getenv(EnvBinding); v != "" {
		cfg.Binding = v
	}
	if v := r.Getenv(EnvFile); v != "" {
		cfg.OutputFile = v
	}
	if v := r.Getenv(EnvTee); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tee = b
		}
	}
	if v := r.Getenv(EnvLevel); v != "" {
		cfg.Level = v
	}
	if v := r.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := r.Getenv(EnvPrintLevel); v != "" {
		cfg.PrintLevel = v
	}
	if v := r.Getenv(EnvTimestampFormat); v != "" {
		cfg.TimestampFormat = v
	}
}
