package feeder

import (
	"math"

	"saltsizer/internal/domain"
	"saltsizer/internal/validate"
)

// Unit conversions used by the speed chain.
const (
	kgPerTonne     = 1000.0
	hoursPerDay    = 24.0
	minutesPerHour = 60.0
)

// Compute sizes the screw speed that delivers the mass throughput described
// by in. Results keep full precision.
func Compute(in domain.FeederInput) (domain.FeederResult, error) {
	if err := validate.Struct(in); err != nil {
		return domain.FeederResult{}, err
	}

	massFlowKgPerHr := in.MassFlowTonnesPerDay * kgPerTonne / hoursPerDay

	if in.BulkDensityKgPerM3 == 0 {
		return domain.FeederResult{}, domain.DomainErrf("feeder volumetric flow",
			"bulk_density_kg_per_m3 is 0")
	}
	volumetricFlowM3PerHr := massFlowKgPerHr / in.BulkDensityKgPerM3

	crossSectionM2 := math.Pi * in.ScrewDiameterM * in.ScrewDiameterM / 4.0
	displacementM3 := crossSectionM2 * in.ControlPitchM
	if displacementM3 == 0 {
		return domain.FeederResult{}, domain.DomainErrf("feeder operating speed",
			"swept volume per revolution is 0 (screw_diameter_m=%v, control_pitch_m=%v)",
			in.ScrewDiameterM, in.ControlPitchM)
	}

	return domain.FeederResult{
		OperatingSpeedRPM:     volumetricFlowM3PerHr / (displacementM3 * minutesPerHour),
		VolumetricFlowM3PerHr: volumetricFlowM3PerHr,
		DisplacementPerRevM3:  displacementM3,
	}, nil
}
