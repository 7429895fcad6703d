package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alisonlhart/genre-classification/internal/pipeline"
)

// NewPlanCmd создаёт команду "plan": показать план выполнения
// без диспетчеризации шагов.
func NewPlanCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the resolved execution plan without running anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			out := opts.Output()

			plan := pipeline.Resolve(cfg.Main.ExecuteSteps)
			if plan.IsEmpty() {
				out.Success("Plan is empty: no known steps selected")
			}

			unmet := plan.UnmetInputs()

			headers := []string{"#", "STEP", "DIR", "ENTRY_POINT", "EXTERNAL_INPUTS"}
			rows := make([][]string, plan.Len())
			for i, step := range plan.Steps() {
				rows[i] = []string{
					strconv.Itoa(i + 1),
					step.ID,
					step.Dir,
					step.EntryPoint,
					strings.Join(unmet[step.ID], ", "),
				}
			}

			out.Print(headers, rows, plan.IDs())
			return nil
		},
	}
}
