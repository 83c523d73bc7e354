package main

// Default limits for CLI commands.
const (
	DefaultSearchLimit = 50
)

// Valid render modes.
var validModes = []string{"star", "metro"}
