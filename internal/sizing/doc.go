// Package sizing runs whole design cases through the individual equipment
// calculators, failing atomically on the first section that cannot be
// sized.
package sizing
