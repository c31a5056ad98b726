package commands

import (
	"github.com/spf13/cobra"

	"saltsizer/internal/domain"
	"saltsizer/internal/sizing"
	"saltsizer/internal/store"
)

// PlantOptions points at the design case to size end to end.
type PlantOptions struct {
	File string
}

func DefaultPlantOptions() *PlantOptions {
	return &PlantOptions{}
}

func plantCmd() *cobra.Command {
	o := DefaultPlantOptions()
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Size every section of a plant design case in one report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd)
		},
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "design case file (defaults to the reference design)")
	return cmd
}

// Run sizes the case and renders the combined report. A failing section
// aborts the whole report.
func (o *PlantOptions) Run(cmd *cobra.Command) error {
	c := domain.DefaultPlantCase()
	if o.File != "" {
		loaded, err := store.Load(o.File)
		if err != nil {
			return err
		}
		c = loaded
		appCtx.Log.Info().Str("file", o.File).Msg("loaded design case")
	}

	rep, err := sizing.ComputeCase(c)
	if err != nil {
		return err
	}
	appCtx.Log.Info().
		Bool("feeder", rep.Feeder != nil).
		Bool("pump", rep.Pump != nil).
		Bool("tank", rep.Tank != nil).
		Msg("design case sized")
	return render(cmd.OutOrStdout(), output, rep, plantRows(rep))
}
