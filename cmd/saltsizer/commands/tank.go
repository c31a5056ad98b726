package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing/tank"
	"saltsizer/internal/store"
)

// tankParamFlags conflict with --file.
var tankParamFlags = []string{
	"mass", "density", "temperature", "height",
	"firebrick-bottom", "firebrick-side", "kaowool-side", "kaowool-roof",
	"heater-per-kg", "walls",
}

// TankOptions carries the storage tank parameters or the design case they
// are read from instead.
type TankOptions struct {
	File string
	In   domain.TankInput
}

func DefaultTankOptions() *TankOptions {
	return &TankOptions{
		In: domain.DefaultTankInput(),
	}
}

func tankCmd() *cobra.Command {
	o := DefaultTankOptions()
	cmd := &cobra.Command{
		Use:   "tank",
		Short: "Size the storage tank geometry, insulation and trace heating",
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

// Bind registers the tank flags, defaulting to the reference design.
func (o *TankOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.File, "file", "f", "", "read the tank section of this design case instead of flags")
	fs.Float64Var(&o.In.StoredMassKg, "mass", o.In.StoredMassKg, "salt inventory to hold, kg")
	fs.Float64Var(&o.In.DensityKgPerM3, "density", o.In.DensityKgPerM3, "salt density at temperature, kg/m3")
	fs.Float64Var(&o.In.SaltTempC, "temperature", o.In.SaltTempC, "storage temperature, degC")
	fs.Float64Var(&o.In.TankHeightM, "height", o.In.TankHeightM, "fill height of the salt column, m")
	fs.Float64Var(&o.In.FirebrickBottomThicknessM, "firebrick-bottom", o.In.FirebrickBottomThicknessM, "firebrick under the floor, m")
	fs.Float64Var(&o.In.FirebrickSideThicknessM, "firebrick-side", o.In.FirebrickSideThicknessM, "firebrick on the shell side, m")
	fs.Float64Var(&o.In.KaowoolSideThicknessM, "kaowool-side", o.In.KaowoolSideThicknessM, "kaowool on the shell side, m")
	fs.Float64Var(&o.In.KaowoolRoofThicknessM, "kaowool-roof", o.In.KaowoolRoofThicknessM, "kaowool over the roof, m")
	fs.Float64Var(&o.In.HeaterPowerPerKgW, "heater-per-kg", o.In.HeaterPowerPerKgW, "trace-heating rating, W/kg")
	fs.BoolVar(&o.In.IncludeWallThickness, "walls", o.In.IncludeWallThickness, "report the structural wall stack-up")
}

// Complete swaps in the case-file section when --file is given. Mixing the
// file with parameter flags is refused rather than merged.
func (o *TankOptions) Complete(cmd *cobra.Command) error {
	if o.File == "" {
		return nil
	}
	if changed := changedParams(cmd, tankParamFlags...); len(changed) > 0 {
		return fmt.Errorf("cannot combine --file with %s", strings.Join(changed, ", "))
	}
	c, err := store.Load(o.File)
	if err != nil {
		return err
	}
	if c.Tank == nil {
		return fmt.Errorf("%s has no tank section", o.File)
	}
	o.In = *c.Tank
	return nil
}

// Run sizes the tank and renders the result.
func (o *TankOptions) Run(cmd *cobra.Command) error {
	res, err := tank.Compute(o.In)
	if err != nil {
		return err
	}
	appCtx.Log.Debug().
		Float64("stored_mass_kg", o.In.StoredMassKg).
		Float64("internal_diameter_m", res.InternalDiameterM).
		Msg("tank sized")
	return render(cmd.OutOrStdout(), output, res, tankRows(res))
}
