package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alisonlhart/genre-classification/internal/domain"
	"github.com/alisonlhart/genre-classification/internal/journal"
)

// NewHistoryCmd создаёт команду "history": последние записи
// журнала диспетчеризаций.
func NewHistoryCmd(opts *Options) *cobra.Command {
	var (
		journalPath string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent step dispatches from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			jrnl, err := journal.Open(journalPath)
			if err != nil {
				return err
			}
			defer jrnl.Close()

			dispatches, err := jrnl.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			headers := []string{"RUN_ID", "STEP", "STATUS", "DURATION", "ERROR", "CREATED"}
			rows := make([][]string, len(dispatches))
			for i, d := range dispatches {
				rows[i] = []string{
					d.RunID.String(),
					d.StepID,
					string(d.Status),
					formatDuration(&d),
					d.Error,
					d.CreatedAt.Format(time.RFC3339),
				}
			}

			opts.Output().Print(headers, rows, dispatches)
			return nil
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "pipeline_journal.db", "Dispatch journal database path")
	cmd.Flags().IntVar(&limit, "limit", 30, "Maximum number of records")

	return cmd
}

func formatDuration(d *domain.Dispatch) string {
	if !d.Status.IsTerminal() {
		return ""
	}
	return d.Duration().Truncate(time.Millisecond).String()
}
