// Package domain defines the input and result records shared across the app.
// It contains plain types (parameters/results), their reference defaults and
// the error taxonomy only; the arithmetic lives under internal/sizing.
package domain
