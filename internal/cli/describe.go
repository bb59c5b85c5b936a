package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <project-id>",
	Short: "Show project details",
	Long:  `Display a project's file, draft state, pages and current selection.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.close()

		info, err := e.engine(nil).Describe(context.Background(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(info)
		}

		PrintSection(info.Name)
		PrintLabelValue("ID", info.ID)
		if info.Path != "" {
			PrintLabelValue("Path", info.Path)
		} else {
			PrintLabelValueWithColor("Path", "never saved", dimColor)
		}
		if info.Draft {
			PrintLabelValueWithColor("Draft", "yes", warningColor)
		} else {
			PrintLabelValueWithColor("Draft", "no", successColor)
		}
		PrintLabelValue("Contents", fmt.Sprintf("%s, %s, %s",
			PrintCount(info.Elements, "element", "elements"),
			PrintCount(info.Patterns, "pattern", "patterns"),
			PrintCount(info.Actions, "action", "actions")))
		if info.Selected != "" {
			PrintLabelValue("Selected", info.Selected)
		}
		if info.Highlighted != "" {
			PrintLabelValue("Highlighted", info.Highlighted)
		}

		PrintSection("Pages")
		if len(info.Pages) == 0 {
			PrintEmptyState("No pages")
			return nil
		}
		rows := make([][]string, 0, len(info.Pages))
		for _, page := range info.Pages {
			active := ""
			if page.Active {
				active = "*"
			}
			rows = append(rows, []string{active, page.ID, page.Name, fmt.Sprint(page.Elements)})
		}
		PrintTable([]string{"", "ID", "NAME", "ELEMENTS"}, rows)
		return nil
	},
}
