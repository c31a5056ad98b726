package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"saltsizer/internal/domain"
	"saltsizer/internal/util/round"
)

// Output formats accepted by --output.
const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
)

// row is one label/value line of a table; the zero row renders blank.
type row struct {
	label string
	value string
}

// render writes v to w in the requested format. Tables carry the display
// rounding; json and yaml emit the full-precision record.
func render(w io.Writer, format string, v any, rows []row) error {
	switch format {
	case tableFormat:
		return renderTable(w, rows)
	case jsonFormat:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case yamlFormat:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("output format must be one of %s, %s, %s",
			tableFormat, jsonFormat, yamlFormat)
	}
}

func renderTable(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, r := range rows {
		if r.label == "" && r.value == "" {
			fmt.Fprintln(tw)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value)
	}
	return tw.Flush()
}

// quantity formats a display-rounded value with its unit.
func quantity(x float64, places int, unit string) string {
	return fmt.Sprintf("%v %s", round.Places(x, places), unit)
}

// feederRows lays out a feeder result: speed to a tenth of an rpm, flow to
// two decimals, swept volume to five.
func feederRows(res domain.FeederResult) []row {
	return []row{
		{"Operating speed", quantity(res.OperatingSpeedRPM, 1, "rpm")},
		{"Volumetric flow", quantity(res.VolumetricFlowM3PerHr, 2, "m3/h")},
		{"Swept volume per revolution", quantity(res.DisplacementPerRevM3, 5, "m3")},
	}
}

// pumpRows lays out a pump result: flow to three decimals, pressure and the
// powers to whole units.
func pumpRows(res domain.PumpResult) []row {
	return []row{
		{"Volumetric flow", quantity(res.VolumetricFlowM3PerS, 3, "m3/s")},
		{"Developed pressure", quantity(res.DevelopedPressurePa, 0, "Pa")},
		{"Fluid power", quantity(res.FluidPowerW, 0, "W")},
		{"Electrical power", quantity(res.ElectricalPowerW, 0, "W")},
	}
}

// tankRows lays out a tank result: volume to three decimals, lengths to
// two, heater power to whole watts. The wall stack-up keeps its exact plate
// gauges.
func tankRows(res domain.TankResult) []row {
	rows := []row{
		{"Molten salt volume", quantity(res.MoltenSaltVolumeM3, 3, "m3")},
		{"Internal diameter", quantity(res.InternalDiameterM, 2, "m")},
		{"External diameter", quantity(res.ExternalDiameterM, 2, "m")},
		{"Height with insulation", quantity(res.TotalHeightWithInsulationM, 2, "m")},
		{"Heater power", quantity(res.HeaterPowerW, 0, "W")},
	}
	if res.Walls != nil {
		rows = append(rows,
			row{"Carbon steel wall", fmt.Sprintf("%v m", res.Walls.CarbonSteelM)},
			row{"SS316 liner", fmt.Sprintf("%v m", res.Walls.SS316LinerM)},
		)
	}
	return rows
}

// plantRows concatenates the section tables under uppercase headers,
// skipping absent sections.
func plantRows(rep domain.PlantReport) []row {
	var rows []row
	section := func(header string, body []row) {
		if len(rows) > 0 {
			rows = append(rows, row{})
		}
		rows = append(rows, row{label: header})
		rows = append(rows, body...)
	}
	if rep.Feeder != nil {
		section("SCREW FEEDER", feederRows(*rep.Feeder))
	}
	if rep.Pump != nil {
		section("ANNULAR PUMP", pumpRows(*rep.Pump))
	}
	if rep.Tank != nil {
		section("STORAGE TANK", tankRows(*rep.Tank))
	}
	return rows
}
