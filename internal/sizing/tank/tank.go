package tank

import (
	"math"

	"saltsizer/internal/domain"
	"saltsizer/internal/validate"
)

// Fixed structural shell stack-up reported when a design asks for it: a
// 1 in carbon steel shell with a 1/4 in SS316 liner.
const (
	CarbonSteelWallM = 0.0254
	SS316LinerM      = 0.00635
)

// Compute sizes the tank geometry, insulation envelope and trace heating
// for the inventory described by in. Results keep full precision.
func Compute(in domain.TankInput) (domain.TankResult, error) {
	if err := validate.Struct(in); err != nil {
		return domain.TankResult{}, err
	}

	if in.DensityKgPerM3 == 0 {
		return domain.TankResult{}, domain.DomainErrf("tank salt volume",
			"density_kg_per_m3 is 0")
	}
	volumeM3 := in.StoredMassKg / in.DensityKgPerM3

	if in.TankHeightM <= 0 {
		return domain.TankResult{}, domain.DomainErrf("tank internal diameter",
			"inverting V = pi/4 * D^2 * h needs tank_height_m > 0, have %v", in.TankHeightM)
	}
	internalDiameterM := math.Sqrt(4.0 * volumeM3 / (math.Pi * in.TankHeightM))

	sideLayersM := in.FirebrickSideThicknessM + in.KaowoolSideThicknessM

	res := domain.TankResult{
		MoltenSaltVolumeM3:         volumeM3,
		InternalDiameterM:          internalDiameterM,
		ExternalDiameterM:          internalDiameterM + 2.0*sideLayersM,
		TotalHeightWithInsulationM: in.TankHeightM + in.KaowoolRoofThicknessM,
		HeaterPowerW:               in.StoredMassKg * in.HeaterPowerPerKgW,
	}
	if in.IncludeWallThickness {
		res.Walls = &domain.WallThickness{
			CarbonSteelM: CarbonSteelWallM,
			SS316LinerM:  SS316LinerM,
		}
	}
	return res, nil
}
