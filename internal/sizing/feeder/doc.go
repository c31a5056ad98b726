// Package feeder sizes the screw feeder that meters granular salt into the
// primary loop.
//
// # Method
//
// The feeder is a constant-diameter screw whose final flight segment (the
// control pitch) fixes the volume discharged per revolution:
//
//  1. Convert the daily mass target to an hourly rate.
//  2. Divide by bulk density for the volumetric duty.
//  3. Swept volume per revolution = flight cross-section times control pitch.
//  4. Operating speed is the duty over the swept volume per minute.
//
// # Errors
//
// Inputs outside their documented ranges return a
// *domain.InvalidParameterError before any arithmetic runs. A zero bulk
// density or a zero swept volume makes a division undefined and returns a
// *domain.DomainError naming the failing step.
package feeder
