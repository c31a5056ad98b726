package domain

// TankInput holds the design parameters of the molten-salt storage tank: a
// vertical cylinder sized from the stored mass at a chosen fill height, with
// firebrick and kaowool insulation wrapped around it and trace heaters rated
// from the inventory.
type TankInput struct {
	// Salt inventory to hold, kg.
	StoredMassKg float64 `json:"stored_mass_kg" validate:"finite,gt=0"`
	// Salt density at storage temperature, kg/m3.
	DensityKgPerM3 float64 `json:"density_kg_per_m3" validate:"finite,gte=0"`
	// Storage temperature, degC. Informational; it does not enter the
	// sizing arithmetic but travels with the case record.
	SaltTempC float64 `json:"salt_temp_c" validate:"finite"`
	// Fill height of the salt column, m. Fixes the cylinder aspect.
	TankHeightM float64 `json:"tank_height_m" validate:"finite"`
	// Firebrick under the tank floor, m. Informational: the floor standoff
	// does not change diameter or height.
	FirebrickBottomThicknessM float64 `json:"firebrick_bottom_thickness_m" validate:"finite,gte=0"`
	// Firebrick layer on the shell side, m.
	FirebrickSideThicknessM float64 `json:"firebrick_side_thickness_m" validate:"finite,gte=0"`
	// Kaowool blanket on the shell side, m.
	KaowoolSideThicknessM float64 `json:"kaowool_side_thickness_m" validate:"finite,gte=0"`
	// Kaowool blanket over the roof, m.
	KaowoolRoofThicknessM float64 `json:"kaowool_roof_thickness_m" validate:"finite,gte=0"`
	// Trace-heating rating per kilogram of inventory, W/kg.
	HeaterPowerPerKgW float64 `json:"heater_power_per_kg_w" validate:"finite,gte=0"`
	// Attach the fixed structural wall stack-up to the result.
	IncludeWallThickness bool `json:"include_wall_thickness"`
}

// WallThickness is the fixed structural shell stack-up reported when a
// design asks for it.
type WallThickness struct {
	CarbonSteelM float64 `json:"carbon_steel_m"`
	SS316LinerM  float64 `json:"ss316_liner_m"`
}

// TankResult is the sized tank, full precision. Walls is nil unless the
// input asked for the structural stack-up.
type TankResult struct {
	MoltenSaltVolumeM3         float64        `json:"molten_salt_volume_m3"`
	InternalDiameterM          float64        `json:"internal_diameter_m"`
	ExternalDiameterM          float64        `json:"external_diameter_m"`
	TotalHeightWithInsulationM float64        `json:"total_height_with_insulation_m"`
	HeaterPowerW               float64        `json:"heater_power_w"`
	Walls                      *WallThickness `json:"walls,omitempty"`
}

// DefaultTankInput returns the reference tank design point: 2 t of salt at
// 600 degC in a 2.5 m column, 10 in firebrick and 10 in kaowool on the
// sides, 12 in kaowool on the roof, 1.5 W/kg of trace heating, with the
// structural wall stack-up reported.
func DefaultTankInput() TankInput {
	return TankInput{
		StoredMassKg:              2000,
		DensityKgPerM3:            1900,
		SaltTempC:                 600,
		TankHeightM:               2.5,
		FirebrickBottomThicknessM: 0.254,
		FirebrickSideThicknessM:   0.254,
		KaowoolSideThicknessM:     0.254,
		KaowoolRoofThicknessM:     0.305,
		HeaterPowerPerKgW:         1.5,
		IncludeWallThickness:      true,
	}
}
