// Package app wires application dependencies for the CLI.
//
// It bundles the environment configuration and the logger built from it,
// exposing them via the App struct for commands to use.
package app
