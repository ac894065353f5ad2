// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It merges
// built-in defaults, CUBETALLY_* environment variables, the optional HCL
// settings file and flags (in increasing precedence) into the application's
// internal configuration.
package cli
