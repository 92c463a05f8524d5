// Package format renders durations, byte sizes, large counts and progress
// bars for terminal output.
package format
