package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/hash"
)

var diffStat bool

var diffCmd = &cobra.Command{
	Use:   "diff <project-id>",
	Short: "Show what a save would change on disk",
	Long: `Compare a project's file with the registry's copy of the project.

The output is a unified diff from the file to what a save would write. A
project whose file does not exist yet is compared against an empty file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.close()

		result, err := e.engine(nil).Diff(context.Background(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}
		return formatDiff(result, diffStat)
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffStat, "stat", false, "Show only the change summary")
}

// formatDiff prints a colored unified diff followed by a change summary.
func formatDiff(result *engine.DiffResult, statOnly bool) error {
	if !result.Changed() {
		PrintEmptyState("No changes detected")
		return nil
	}

	fmt.Println()
	state := "M"
	stateClr := warningColor
	if result.Missing {
		state = "A"
		stateClr = successColor
	}
	_, _ = stateClr.Printf("  %s ", state)
	_, _ = headerColor.Printf("%s", result.Path)
	if !result.Missing {
		_, _ = dimColor.Printf("  %s", hash.Short(result.DiskDigest))
	}
	_, _ = dimColor.Printf(" → %s\n", hash.Short(result.RegistryDigest))

	insertions, deletions := countChanges(result.Diff)

	if !statOnly {
		_, _ = dimColor.Println("  " + strings.Repeat("─", 50))
		printUnifiedDiff(result.Diff)
	}

	fmt.Println()
	_, _ = dimColor.Print("  ")
	fmt.Print("1 file changed")
	if insertions > 0 {
		_, _ = successColor.Printf(", %d insertion%s(+)", insertions, plural(insertions))
	}
	if deletions > 0 {
		_, _ = errorColor.Printf(", %d deletion%s(-)", deletions, plural(deletions))
	}
	fmt.Println()

	return nil
}

// countChanges counts added and removed lines of a unified diff.
func countChanges(diffText string) (insertions, deletions int) {
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "--- "):
		case strings.HasPrefix(line, "+"):
			insertions++
		case strings.HasPrefix(line, "-"):
			deletions++
		}
	}
	return insertions, deletions
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func printUnifiedDiff(diffText string) {
	lines := strings.Split(diffText, "\n")
	for i, line := range lines {
		if i == len(lines)-1 && line == "" {
			continue
		}

		switch {
		// The file header already names both sides.
		case strings.HasPrefix(line, "+++ "),
			strings.HasPrefix(line, "--- "):
			continue
		case strings.HasPrefix(line, "@@"):
			_, _ = infoColor.Printf("  %s\n", line)
		case strings.HasPrefix(line, "+"):
			_, _ = successColor.Printf("  %s\n", line)
		case strings.HasPrefix(line, "-"):
			_, _ = errorColor.Printf("  %s\n", line)
		default:
			fmt.Printf("  %s\n", line)
		}
	}
}
