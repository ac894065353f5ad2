// Package settings loads the optional HCL settings file. Every attribute is
// optional; attributes that are present override environment defaults and
// are in turn overridden by explicit command-line flags.
//
//	input      = "data/input.txt"
//	output     = "json"
//	records    = true
//	log_level  = "debug"
//	log_format = "text"
//	archive    = "runs.db"
package settings
