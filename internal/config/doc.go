// Package config loads the optional YAML file that overrides form defaults,
// registers extra fonts and tunes logging. Every key is optional.
package config
