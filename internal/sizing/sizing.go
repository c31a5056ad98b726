package sizing

import (
	"fmt"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing/feeder"
	"saltsizer/internal/sizing/pump"
	"saltsizer/internal/sizing/tank"
)

// ComputeCase sizes every section present in c, in report order. The first
// section error aborts the run with the section named on the wrapped error;
// no partial report is returned.
func ComputeCase(c domain.PlantCase) (domain.PlantReport, error) {
	if c.Empty() {
		return domain.PlantReport{}, fmt.Errorf("design case has no sections")
	}

	var rep domain.PlantReport
	if c.Feeder != nil {
		res, err := feeder.Compute(*c.Feeder)
		if err != nil {
			return domain.PlantReport{}, fmt.Errorf("feeder: %w", err)
		}
		rep.Feeder = &res
	}
	if c.Pump != nil {
		res, err := pump.Compute(*c.Pump)
		if err != nil {
			return domain.PlantReport{}, fmt.Errorf("pump: %w", err)
		}
		rep.Pump = &res
	}
	if c.Tank != nil {
		res, err := tank.Compute(*c.Tank)
		if err != nil {
			return domain.PlantReport{}, fmt.Errorf("tank: %w", err)
		}
		rep.Tank = &res
	}
	return rep, nil
}
