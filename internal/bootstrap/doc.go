// Package bootstrap turns command line flags and the YAML configuration into
// a ready-to-run environment for the terminal and desktop front ends.
package bootstrap
