// Package pump sizes the annular linear-induction pump that circulates
// molten salt through the primary loop.
//
// # Overview
//
// The pump has no moving parts: salt fills the annular gap between two
// concentric cylinders, a radial current density J is driven through it and
// an axial magnetic field B is applied across it. The J x B body force acts
// on every element of salt in the gap.
//
// # Chain
//
// Sizing walks one chain from mass flow to wall power:
//
//  1. Volumetric flow Q = mass flow / density.
//  2. Body force per unit volume f = J * B.
//  3. Pressure rise dP = f * gap thickness.
//  4. Power into the fluid = dP * Q.
//  5. Electrical power = fluid power / pump efficiency.
//
// The operating temperature rides along in the input record for traceability
// but takes no part in the chain; density is supplied already evaluated at
// temperature.
//
// # Errors
//
// Inputs outside their documented ranges return a
// *domain.InvalidParameterError before any arithmetic runs. A zero density
// makes step 1 undefined and returns a *domain.DomainError.
package pump
