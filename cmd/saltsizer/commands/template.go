package commands

import (
	"github.com/spf13/cobra"

	"saltsizer/internal/domain"
	"saltsizer/internal/store"
)

// TemplateOptions points at where the reference case is written.
type TemplateOptions struct {
	File string
}

func DefaultTemplateOptions() *TemplateOptions {
	return &TemplateOptions{}
}

func templateCmd() *cobra.Command {
	o := DefaultTemplateOptions()
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the reference design case to edit as a starting point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd)
		},
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "write to this file instead of stdout")
	return cmd
}

// Run writes the reference case as YAML to stdout or to --file.
func (o *TemplateOptions) Run(cmd *cobra.Command) error {
	c := domain.DefaultPlantCase()
	if o.File == "" {
		b, err := store.Marshal(c)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}
	if err := store.Write(o.File, c); err != nil {
		return err
	}
	appCtx.Log.Info().Str("file", o.File).Msg("wrote design case template")
	return nil
}
