package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a project file to the registry",
	Long: `Read a project file and add it to the registry under its own id.

A project already registered with the same id is replaced. The imported
project remembers the file as its path, so a later save writes back to it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.close()

		result, err := e.engine(nil).Import(context.Background(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Replaced {
			PrintWarning(fmt.Sprintf("Replaced project %s", result.ProjectID))
		}
		PrintSuccess(fmt.Sprintf("Imported %s (%s)", result.Name, result.ProjectID))
		PrintLabelValue("Path", result.Path)
		return nil
	},
}
