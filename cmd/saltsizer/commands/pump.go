package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing/pump"
	"saltsizer/internal/store"
)

// pumpParamFlags conflict with --file.
var pumpParamFlags = []string{
	"mass-flow", "temperature", "density", "gap", "current-density", "field", "efficiency",
}

// PumpOptions carries the annular pump parameters or the design case they
// are read from instead.
type PumpOptions struct {
	File string
	In   domain.PumpInput
}

func DefaultPumpOptions() *PumpOptions {
	return &PumpOptions{
		In: domain.DefaultPumpInput(),
	}
}

func pumpCmd() *cobra.Command {
	o := DefaultPumpOptions()
	cmd := &cobra.Command{
		Use:   "pump",
		Short: "Size the annular pump electrical power for a salt mass flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd); err != nil {
				return err
			}
			return o.Run(cmd)
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

// Bind registers the pump flags, defaulting to the reference design.
func (o *PumpOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.File, "file", "f", "", "read the pump section of this design case instead of flags")
	fs.Float64Var(&o.In.MassFlowKgPerS, "mass-flow", o.In.MassFlowKgPerS, "salt mass flow to deliver, kg/s")
	fs.Float64Var(&o.In.OperatingTempC, "temperature", o.In.OperatingTempC, "salt temperature at the inlet, degC")
	fs.Float64Var(&o.In.DensityKgPerM3, "density", o.In.DensityKgPerM3, "salt density at temperature, kg/m3")
	fs.Float64Var(&o.In.GapThicknessM, "gap", o.In.GapThicknessM, "radial width of the annular duct, m")
	fs.Float64Var(&o.In.CurrentDensityAPerM2, "current-density", o.In.CurrentDensityAPerM2, "current density through the salt, A/m2")
	fs.Float64Var(&o.In.MagneticFieldTesla, "field", o.In.MagneticFieldTesla, "applied magnetic flux density, T")
	fs.Float64Var(&o.In.PumpEfficiency, "efficiency", o.In.PumpEfficiency, "wire-to-fluid efficiency, fraction in (0, 1]")
}

// Complete swaps in the case-file section when --file is given. Mixing the
// file with parameter flags is refused rather than merged.
func (o *PumpOptions) Complete(cmd *cobra.Command) error {
	if o.File == "" {
		return nil
	}
	if changed := changedParams(cmd, pumpParamFlags...); len(changed) > 0 {
		return fmt.Errorf("cannot combine --file with %s", strings.Join(changed, ", "))
	}
	c, err := store.Load(o.File)
	if err != nil {
		return err
	}
	if c.Pump == nil {
		return fmt.Errorf("%s has no pump section", o.File)
	}
	o.In = *c.Pump
	return nil
}

// Run sizes the pump and renders the result.
func (o *PumpOptions) Run(cmd *cobra.Command) error {
	res, err := pump.Compute(o.In)
	if err != nil {
		return err
	}
	appCtx.Log.Debug().
		Float64("mass_flow_kg_per_s", o.In.MassFlowKgPerS).
		Float64("electrical_power_w", res.ElectricalPowerW).
		Msg("pump sized")
	return render(cmd.OutOrStdout(), output, res, pumpRows(res))
}
