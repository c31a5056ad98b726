package pump

import (
	"saltsizer/internal/domain"
	"saltsizer/internal/validate"
)

// Compute sizes the electrical power that delivers the mass flow described
// by in. Results keep full precision.
func Compute(in domain.PumpInput) (domain.PumpResult, error) {
	if err := validate.Struct(in); err != nil {
		return domain.PumpResult{}, err
	}

	if in.DensityKgPerM3 == 0 {
		return domain.PumpResult{}, domain.DomainErrf("pump volumetric flow",
			"density_kg_per_m3 is 0")
	}
	volumetricFlowM3PerS := in.MassFlowKgPerS / in.DensityKgPerM3

	forcePerVolumeNPerM3 := in.CurrentDensityAPerM2 * in.MagneticFieldTesla
	developedPressurePa := forcePerVolumeNPerM3 * in.GapThicknessM
	fluidPowerW := developedPressurePa * volumetricFlowM3PerS

	return domain.PumpResult{
		VolumetricFlowM3PerS: volumetricFlowM3PerS,
		DevelopedPressurePa:  developedPressurePa,
		FluidPowerW:          fluidPowerW,
		ElectricalPowerW:     fluidPowerW / in.PumpEfficiency,
	}, nil
}
