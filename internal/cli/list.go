package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects in the registry",
	Long:    `Display every project the registry holds, ordered by id.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.close()

		entries, err := e.engine(nil).List(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(entries)
		}

		if len(entries) == 0 {
			PrintEmptyState("No projects found")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			draft := ""
			if entry.Draft {
				draft = "draft"
			}
			path := entry.Path
			if path == "" {
				path = "-"
			}
			rows = append(rows, []string{
				entry.ID,
				entry.Name,
				draft,
				path,
				entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
			})
		}
		PrintTable([]string{"ID", "NAME", "STATE", "PATH", "UPDATED"}, rows)
		PrintInfo(fmt.Sprintf("\n%s", PrintCount(len(entries), "project", "projects")))
		return nil
	},
}
