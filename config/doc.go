// Package config provides YAML application configuration for the
// timetable-to-network converter.
//
// Configuration is loaded from config.yml, validated with struct tags, and
// defaulted so that the tool can run with no config file at all. The loaded
// configuration is exposed as the package-level Config variable.
package config
