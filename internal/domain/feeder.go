package domain

// FeederInput holds the design parameters of the screw feeder that meters
// granular salt into the process. Throughput is given in tonnes per day, the
// unit plant balances are written in; geometry is SI.
type FeederInput struct {
	// Target salt throughput, t/d.
	MassFlowTonnesPerDay float64 `json:"mass_flow_tonnes_per_day" validate:"finite,gt=0"`
	// Loose-packed bulk density of the granular feed, kg/m3.
	BulkDensityKgPerM3 float64 `json:"bulk_density_kg_per_m3" validate:"finite,gte=0"`
	// Outer diameter of the screw flights, m.
	ScrewDiameterM float64 `json:"screw_diameter_m" validate:"finite,gte=0"`
	// Axial length of the final flight segment; it meters the volume
	// discharged per revolution, m.
	ControlPitchM float64 `json:"control_pitch_m" validate:"finite,gte=0"`
}

// FeederResult is the sized feeder operating point. All values carry full
// float64 precision; rounding happens only at display time.
type FeederResult struct {
	OperatingSpeedRPM     float64 `json:"operating_speed_rpm"`
	VolumetricFlowM3PerHr float64 `json:"volumetric_flow_m3_per_hr"`
	DisplacementPerRevM3  float64 `json:"displacement_per_rev_m3"`
}

// DefaultFeederInput returns the reference feeder design point: a 10 in
// screw with a 4 in control pitch moving 50.2 t/d of loose salt.
func DefaultFeederInput() FeederInput {
	return FeederInput{
		MassFlowTonnesPerDay: 50.2,
		BulkDensityKgPerM3:   400,
		ScrewDiameterM:       0.254,
		ControlPitchM:        0.1016,
	}
}
