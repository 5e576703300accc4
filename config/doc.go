// Package config holds the settings that select and shape the default
// binding.
//
// Values are layered, later sources winning: Default, then an optional
// TOML file, then LOGFACADE_* environment variables:
//
//	binding          = "ZAP"      # LOGFACADE_BINDING
//	file             = "app.log"  # LOGFACADE_FILE
//	tee              = true       # LOGFACADE_TEE
//	level            = "DEBUG"    # LOGFACADE_LEVEL
//	format           = "json"     # LOGFACADE_FORMAT
//	print_level      = "LONG"     # LOGFACADE_PRINT_LEVEL
//	timestamp_format = "15:04:05" # LOGFACADE_TIMESTAMP_FORMAT
//
// Environment access goes through Reader so tests can supply values
// without touching the process environment.
package config
