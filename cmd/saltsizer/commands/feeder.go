package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing/feeder"
	"saltsizer/internal/store"
)

// feederParamFlags conflict with --file.
var feederParamFlags = []string{"mass-flow", "bulk-density", "screw-diameter", "pitch"}

// FeederOptions carries the screw feeder parameters or the design case they
// are read from instead.
type FeederOptions struct {
	File string
	In   domain.FeederInput
}

func DefaultFeederOptions() *FeederOptions {
	return &FeederOptions{
		In: domain.DefaultFeederInput(),
	}
}

func feederCmd() *cobra.Command {
	o := DefaultFeederOptions()
	cmd := &cobra.Command{
		Use:   "feeder",
		Short: "Size the screw feeder speed for a target salt throughput",
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

// Bind registers the feeder flags, defaulting to the reference design.
func (o *FeederOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.File, "file", "f", "", "read the feeder section of this design case instead of flags")
	fs.Float64Var(&o.In.MassFlowTonnesPerDay, "mass-flow", o.In.MassFlowTonnesPerDay, "target throughput, t/d")
	fs.Float64Var(&o.In.BulkDensityKgPerM3, "bulk-density", o.In.BulkDensityKgPerM3, "bulk density of the granular feed, kg/m3")
	fs.Float64Var(&o.In.ScrewDiameterM, "screw-diameter", o.In.ScrewDiameterM, "screw flight diameter, m")
	fs.Float64Var(&o.In.ControlPitchM, "pitch", o.In.ControlPitchM, "control pitch of the metering flight, m")
}

// Complete swaps in the case-file section when --file is given. Mixing the
// file with parameter flags is refused rather than merged.
func (o *FeederOptions) Complete(cmd *cobra.Command) error {
	if o.File == "" {
		return nil
	}
	if changed := changedParams(cmd, feederParamFlags...); len(changed) > 0 {
		return fmt.Errorf("cannot combine --file with %s", strings.Join(changed, ", "))
	}
	c, err := store.Load(o.File)
	if err != nil {
		return err
	}
	if c.Feeder == nil {
		return fmt.Errorf("%s has no feeder section", o.File)
	}
	o.In = *c.Feeder
	return nil
}

// Run sizes the feeder and renders the result.
func (o *FeederOptions) Run(cmd *cobra.Command) error {
	res, err := feeder.Compute(o.In)
	if err != nil {
		return err
	}
	appCtx.Log.Debug().
		Float64("mass_flow_tonnes_per_day", o.In.MassFlowTonnesPerDay).
		Float64("operating_speed_rpm", res.OperatingSpeedRPM).
		Msg("feeder sized")
	return render(cmd.OutOrStdout(), output, res, feederRows(res))
}
