// Package tank sizes the molten-salt storage tank: a vertical cylinder
// holding the plant's salt inventory at temperature.
//
// # Method
//
// The stored mass fixes the salt volume, and the chosen fill height fixes
// the cylinder diameter through V = pi/4 * D^2 * h. Firebrick and kaowool
// side layers wrap the shell to give the external diameter; the kaowool
// roof blanket adds to the overall height; trace heaters are rated per
// kilogram of inventory. Designs that ask for it also get the fixed
// structural wall stack-up attached to the result.
//
// The floor firebrick and the storage temperature ride along in the input
// record for traceability but take no part in the arithmetic.
package tank
