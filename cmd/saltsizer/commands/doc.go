// Package commands defines the saltsizer CLI and wires dependencies for subcommands.
//
// Commands
//
//   - feeder    Size the screw feeder speed for a target throughput
//   - pump      Size the annular pump electrical power for a mass flow
//   - tank      Size the storage tank geometry, insulation and heaters
//   - plant     Size every section of a design case in one report
//   - template  Write the reference design case to edit
//   - version   Print the saltsizer version
//
// # Implementation
//
// The root command reads the SALTSIZER_* environment, lets persistent flags
// override it and builds the logger before any subcommand runs, so handlers
// share one app context. Results go to stdout in the selected output format;
// logs go to stderr.
package commands
