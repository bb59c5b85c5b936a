package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/message"
)

var (
	savePublish bool
	savePath    string
	savePassive bool
)

var saveCmd = &cobra.Command{
	Use:   "save <project-id>",
	Short: "Write a project to its file",
	Long: `Write a project from the registry to disk.

Without --publish the project is written to the path it was last saved to.
With --publish the destination is --path, or asked for on an interactive
terminal, or <name>.<extension> in the current directory. A published
project stops being a draft and takes the file's name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.close()

		host, err := newCLIHost(e.fs, e.logger, savePath)
		if err != nil {
			return err
		}

		req := message.Message{
			Type:        message.TypeSave,
			ID:          idgen.New(),
			AppID:       cliAppID,
			Transaction: idgen.New(),
			Payload:     message.SavePayload{ProjectID: args[0], Publish: savePublish},
		}

		outcome := e.engine(host).Save(context.Background(), req, engine.SaveConfig{Passive: savePassive})

		if jsonOutput {
			return outputJSON(saveReport(outcome, host.app))
		}
		return printSaveOutcome(outcome, host.app)
	},
}

func init() {
	saveCmd.Flags().BoolVar(&savePublish, "publish", false, "Choose a new destination and mark the project as published")
	saveCmd.Flags().StringVar(&savePath, "path", "", "Destination for --publish")
	saveCmd.Flags().BoolVar(&savePassive, "passive", false, "Do not acknowledge the save")
}

// saveResult is the JSON form of a save.
type saveResult struct {
	State   engine.SaveState          `json:"state"`
	Path    string                    `json:"path,omitempty"`
	Project *message.SavedProject     `json:"project,omitempty"`
	Error   *message.ShowErrorPayload `json:"error,omitempty"`
}

func saveReport(outcome *engine.SaveOutcome, app *message.Recorder) saveResult {
	r := saveResult{State: outcome.State, Path: outcome.Path}
	if m, ok := app.Last(); ok {
		switch p := m.Payload.(type) {
		case message.SaveResultPayload:
			r.Project = &p.Project
		case message.ShowErrorPayload:
			r.Error = &p
		}
	}
	return r
}

func printSaveOutcome(outcome *engine.SaveOutcome, app *message.Recorder) error {
	switch outcome.State {
	case engine.SaveSaved:
		if outcome.Project != nil {
			PrintSuccess(fmt.Sprintf("Saved %s to %s", outcome.Project.Name(), outcome.Path))
		} else {
			PrintSuccess(fmt.Sprintf("Saved to %s", outcome.Path))
		}
		for _, m := range app.OfType(message.TypeSaveResult) {
			p := m.Payload.(message.SaveResultPayload)
			if p.Project.Draft {
				PrintLabelValueWithColor("Draft", "yes", warningColor)
			}
		}
		return nil

	case engine.SaveDropped:
		if outcome.Err != nil {
			return fmt.Errorf("save was not performed: %w", outcome.Err)
		}
		return fmt.Errorf("save was not performed")

	default:
		for _, m := range app.OfType(message.TypeShowError) {
			p := m.Payload.(message.ShowErrorPayload)
			PrintError(p.Message)
			PrintError(p.Detail)
		}
		return fmt.Errorf("save failed: %w", outcome.Err)
	}
}
