// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (resolve inputs, fold
// records, archive, report), decoupled from any specific entrypoint.
package app
