// SPDX-License-Identifier: MPL-2.0

// Package config loads the launcher's configuration.
//
// Configuration is optional: the launcher works out of the box with defaults
// matching the expected project layout (.venv, requirements.txt, easySql.py).
// When present, a TOML config file in the platform config directory and
// EASYSQL_LAUNCHER_* environment variables override the defaults via viper.
package config
