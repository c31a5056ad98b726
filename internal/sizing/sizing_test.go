package sizing_test

import (
	"strings"
	"testing"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing"
)

func TestComputeCase_ReferenceCaseSizesEverySection(t *testing.T) {
	t.Parallel()

	rep, err := sizing.ComputeCase(domain.DefaultPlantCase())
	if err != nil {
		t.Fatalf("ComputeCase: %v", err)
	}
	if rep.Feeder == nil || rep.Pump == nil || rep.Tank == nil {
		t.Fatalf("missing sections in report: %+v", rep)
	}
	if rep.Feeder.OperatingSpeedRPM <= 0 {
		t.Fatalf("feeder speed %v, want positive", rep.Feeder.OperatingSpeedRPM)
	}
	if rep.Pump.ElectricalPowerW <= rep.Pump.FluidPowerW {
		t.Fatalf("electrical power %v should exceed fluid power %v at 50%% efficiency",
			rep.Pump.ElectricalPowerW, rep.Pump.FluidPowerW)
	}
	if rep.Tank.Walls == nil {
		t.Fatal("reference tank asks for the wall stack-up")
	}
}

func TestComputeCase_SkipsAbsentSections(t *testing.T) {
	t.Parallel()

	tankIn := domain.DefaultTankInput()
	rep, err := sizing.ComputeCase(domain.PlantCase{Tank: &tankIn})
	if err != nil {
		t.Fatalf("ComputeCase: %v", err)
	}
	if rep.Feeder != nil || rep.Pump != nil {
		t.Fatalf("absent sections were sized: %+v", rep)
	}
	if rep.Tank == nil {
		t.Fatal("tank section missing from report")
	}
}

func TestComputeCase_EmptyCaseErrors(t *testing.T) {
	t.Parallel()

	if _, err := sizing.ComputeCase(domain.PlantCase{}); err == nil {
		t.Fatal("want error for a case with no sections")
	}
}

func TestComputeCase_SectionFailureAbortsTheRun(t *testing.T) {
	t.Parallel()

	c := domain.DefaultPlantCase()
	c.Pump.DensityKgPerM3 = 0

	rep, err := sizing.ComputeCase(c)
	if err == nil {
		t.Fatal("want error from the pump section")
	}
	if !strings.HasPrefix(err.Error(), "pump: ") {
		t.Fatalf("error should name the failing section, got %q", err)
	}
	if !domain.IsDomainError(err) {
		t.Fatalf("section wrap should preserve the error type, got %v", err)
	}
	if rep.Feeder != nil || rep.Pump != nil || rep.Tank != nil {
		t.Fatalf("failed run must not return a partial report, got %+v", rep)
	}
}
