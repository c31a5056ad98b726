package feeder_test

import (
	"errors"
	"math"
	"testing"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing/feeder"
)

// assertClose fails unless got is within a relative 1e-12 of want.
func assertClose(t *testing.T, what string, got, want float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > math.Abs(want)*1e-12 {
		t.Fatalf("%s: got %v, want %v (diff %g)", what, got, want, diff)
	}
}

func TestCompute_ReferenceDesign(t *testing.T) {
	t.Parallel()

	res, err := feeder.Compute(domain.DefaultFeederInput())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// 50.2 t/d * 1000 / 24 = 2091.66... kg/h, which at 400 kg/m3 is
	// 5.2291... m3/h. The 0.254 m screw at 0.1016 m pitch sweeps
	// pi/4 * 0.254^2 * 0.1016 = 0.0051481... m3 per revolution.
	assertClose(t, "volumetric flow", res.VolumetricFlowM3PerHr, 5.229166666666666)
	assertClose(t, "swept volume", res.DisplacementPerRevM3, 0.005148147987630577)
	assertClose(t, "operating speed", res.OperatingSpeedRPM, 16.928957362371712)

	// The three outputs must stay mutually consistent, not just close to
	// their own expected values.
	assertClose(t, "speed identity", res.OperatingSpeedRPM,
		res.VolumetricFlowM3PerHr/(res.DisplacementPerRevM3*60.0))

	if res.OperatingSpeedRPM <= 0 {
		t.Fatalf("operating speed %v, want positive", res.OperatingSpeedRPM)
	}
}

func TestCompute_SpeedScalesWithMassFlow(t *testing.T) {
	t.Parallel()

	base := domain.DefaultFeederInput()
	scaled := base
	scaled.MassFlowTonnesPerDay *= 3.5

	bres, err := feeder.Compute(base)
	if err != nil {
		t.Fatalf("Compute(base): %v", err)
	}
	sres, err := feeder.Compute(scaled)
	if err != nil {
		t.Fatalf("Compute(scaled): %v", err)
	}

	// Same screw, 3.5x the duty: speed and flow scale together and the
	// swept volume does not move.
	assertClose(t, "scaled speed", sres.OperatingSpeedRPM, 3.5*bres.OperatingSpeedRPM)
	assertClose(t, "scaled flow", sres.VolumetricFlowM3PerHr, 3.5*bres.VolumetricFlowM3PerHr)
	if sres.DisplacementPerRevM3 != bres.DisplacementPerRevM3 {
		t.Fatalf("swept volume moved: %v -> %v", bres.DisplacementPerRevM3, sres.DisplacementPerRevM3)
	}
}

func TestCompute_ZeroBulkDensityIsDomainError(t *testing.T) {
	t.Parallel()

	in := domain.DefaultFeederInput()
	in.BulkDensityKgPerM3 = 0

	_, err := feeder.Compute(in)
	if !domain.IsDomainError(err) {
		t.Fatalf("want DomainError, got %v", err)
	}
}

func TestCompute_ZeroSweptVolumeIsDomainError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*domain.FeederInput)
	}{
		{"zero diameter", func(in *domain.FeederInput) { in.ScrewDiameterM = 0 }},
		{"zero pitch", func(in *domain.FeederInput) { in.ControlPitchM = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.DefaultFeederInput()
			tc.mutate(&in)

			_, err := feeder.Compute(in)
			if !domain.IsDomainError(err) {
				t.Fatalf("want DomainError, got %v", err)
			}
		})
	}
}

func TestCompute_RejectsOutOfRangeInputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*domain.FeederInput)
		field  string
	}{
		{"zero mass flow", func(in *domain.FeederInput) { in.MassFlowTonnesPerDay = 0 }, "mass_flow_tonnes_per_day"},
		{"negative mass flow", func(in *domain.FeederInput) { in.MassFlowTonnesPerDay = -50.2 }, "mass_flow_tonnes_per_day"},
		{"nan mass flow", func(in *domain.FeederInput) { in.MassFlowTonnesPerDay = math.NaN() }, "mass_flow_tonnes_per_day"},
		{"negative bulk density", func(in *domain.FeederInput) { in.BulkDensityKgPerM3 = -400 }, "bulk_density_kg_per_m3"},
		{"negative diameter", func(in *domain.FeederInput) { in.ScrewDiameterM = -0.254 }, "screw_diameter_m"},
		{"negative pitch", func(in *domain.FeederInput) { in.ControlPitchM = -0.1 }, "control_pitch_m"},
		{"infinite pitch", func(in *domain.FeederInput) { in.ControlPitchM = math.Inf(1) }, "control_pitch_m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.DefaultFeederInput()
			tc.mutate(&in)

			_, err := feeder.Compute(in)
			var inv *domain.InvalidParameterError
			if !errors.As(err, &inv) {
				t.Fatalf("want InvalidParameterError, got %v", err)
			}
			if inv.Field != tc.field {
				t.Fatalf("want field %s, got %s", tc.field, inv.Field)
			}
		})
	}
}
