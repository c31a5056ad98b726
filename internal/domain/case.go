package domain

// PlantCase bundles the design inputs for one sizing run. Any subset of
// sections may be present; absent sections are skipped.
type PlantCase struct {
	Feeder *FeederInput `json:"feeder,omitempty"`
	Pump   *PumpInput   `json:"pump,omitempty"`
	Tank   *TankInput   `json:"tank,omitempty"`
}

// Empty reports whether the case names no sections at all.
func (c PlantCase) Empty() bool {
	return c.Feeder == nil && c.Pump == nil && c.Tank == nil
}

// PlantReport mirrors PlantCase with the computed results. A section is nil
// exactly when the case omitted it.
type PlantReport struct {
	Feeder *FeederResult `json:"feeder,omitempty"`
	Pump   *PumpResult   `json:"pump,omitempty"`
	Tank   *TankResult   `json:"tank,omitempty"`
}

// DefaultPlantCase returns the reference plant design with all three
// sections at their documented defaults.
func DefaultPlantCase() PlantCase {
	feeder := DefaultFeederInput()
	pump := DefaultPumpInput()
	tank := DefaultTankInput()
	return PlantCase{Feeder: &feeder, Pump: &pump, Tank: &tank}
}
