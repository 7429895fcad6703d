package cli

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// NewConfigCmd создаёт группу команд "config".
func NewConfigCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

// newConfigShowCmd — команда "config show": эффективная конфигурация
// после применения всех переопределений.
func newConfigShowCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration after overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			out := opts.Output()

			if opts.JSONOutput {
				out.JSON(cfg)
				return nil
			}

			rendered, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			out.Raw(string(rendered))
			return nil
		},
	}
}
