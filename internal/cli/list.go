package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// newListCommand creates the list command for printing one page of tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search string
		Date   string
		Format string
		Page   int
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Load the task collection once, filter it and print one page.

Search matches a case-insensitive substring of the title. Date must equal the
displayed date exactly (YYYY-MM-DD). Both filters apply together.

Output format is tab-separated with columns:
  ID, DATE, STATUS, TITLE
followed by the page position. Use --format json or --format yaml for
machine-readable output of the page's tasks.

Examples:
  # First page of all tasks
  taskboard list

  # Third page of tasks mentioning "report"
  taskboard list --search report --page 3

  # Tasks shown on a given date, as JSON
  taskboard list --date 2024-07-05 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Page < 1 {
				return fmt.Errorf("page must be at least 1: %d", opts.Page)
			}
			if opts.Format != formatTable && opts.Format != formatJSON && opts.Format != formatYAML {
				return fmt.Errorf("%w: %q (use table, json or yaml)", domain.ErrInvalidFormat, opts.Format)
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Filter: domain.TaskFilter{
					Search: opts.Search,
					Date:   opts.Date,
				},
				Page:     opts.Page - 1,
				PageSize: c.PageSize(),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch opts.Format {
			case formatJSON:
				return printTasksJSON(w, out.Tasks)
			case formatYAML:
				return printTasksYAML(w, out.Tasks)
			default:
				printTaskPage(w, out)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Case-insensitive title substring")
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Exact display date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "Page number, starting at 1")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

// printTaskPage prints tasks in TSV format followed by the page position.
func printTaskPage(w io.Writer, out *usecase.ListTasksOutput) {
	if out.Filtered == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tDATE\tSTATUS\tTITLE")
	for _, task := range out.Tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			task.ID,
			task.DisplayDate,
			task.StatusLabel(),
			task.Title,
		)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(w, "\npage %d of %d (%d of %d tasks)\n", out.Page+1, out.PageCount, out.Filtered, out.Total)
}

func printTasksJSON(w io.Writer, tasks []*domain.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}

func printTasksYAML(w io.Writer, tasks []*domain.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return enc.Close()
}
