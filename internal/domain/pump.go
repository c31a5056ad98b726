package domain

// PumpInput holds the design parameters of the annular linear-induction pump
// that circulates molten salt. The duct is the gap between two concentric
// cylinders; a current density crossed with a magnetic field produces the
// body force that develops the pressure rise.
type PumpInput struct {
	// Salt mass flow to deliver, kg/s.
	MassFlowKgPerS float64 `json:"mass_flow_kg_per_s" validate:"finite,gt=0"`
	// Salt temperature at the pump inlet, degC. Reserved for future
	// thermal derating; it does not enter the sizing arithmetic but
	// travels with the case record.
	OperatingTempC float64 `json:"operating_temp_c" validate:"finite"`
	// Salt density at operating temperature, kg/m3.
	DensityKgPerM3 float64 `json:"density_kg_per_m3" validate:"finite,gte=0"`
	// Radial width of the annular duct, m.
	GapThicknessM float64 `json:"gap_thickness_m" validate:"finite,gt=0"`
	// Current density driven through the salt, A/m2.
	CurrentDensityAPerM2 float64 `json:"current_density_a_per_m2" validate:"finite,gt=0"`
	// Applied magnetic flux density, T.
	MagneticFieldTesla float64 `json:"magnetic_field_tesla" validate:"finite,gt=0"`
	// Wire-to-fluid efficiency as a fraction in (0, 1].
	PumpEfficiency float64 `json:"pump_efficiency" validate:"finite,gt=0,lte=1"`
}

// PumpResult is the sized pump operating point, full precision.
type PumpResult struct {
	VolumetricFlowM3PerS float64 `json:"volumetric_flow_m3_per_s"`
	DevelopedPressurePa  float64 `json:"developed_pressure_pa"`
	FluidPowerW          float64 `json:"fluid_power_w"`
	ElectricalPowerW     float64 `json:"electrical_power_w"`
}

// DefaultPumpInput returns the reference pump design point: 200 kg/s of salt
// at 600 degC across a 10 mm gap, driven at 1 MA/m2 in a 0.5 T field at 50%
// efficiency.
func DefaultPumpInput() PumpInput {
	return PumpInput{
		MassFlowKgPerS:       200,
		OperatingTempC:       600,
		DensityKgPerM3:       1900,
		GapThicknessM:        0.01,
		CurrentDensityAPerM2: 1e6,
		MagneticFieldTesla:   0.5,
		PumpEfficiency:       0.5,
	}
}
