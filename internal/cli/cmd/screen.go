package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oneuniverse/onboard/internal/cli/model"
	"github.com/oneuniverse/onboard/internal/logging"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Open the interactive permission screen",
	Long: `Open the permission screen: toggle capabilities, grant them, then
retry the failures or continue without them.

Logs go to $XDG_DATA_HOME/onboard/logs while the screen is open.`,
	Annotations: map[string]string{
		annotationOwnsTerm:  "true",
		annotationWatchConf: "true",
	},
	RunE: runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)
}

func runScreen(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	log := logging.FromContext(app.Ctx())

	m := model.NewPermissionScreenModel(app.Ctx(), app.Theme, app.NewFlow())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(app.Ctx()))
	final, err := p.Run()
	if err != nil {
		return err
	}

	screen, ok := final.(model.PermissionScreenModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if out := screen.Outcome(); out != nil {
		if out.Result != nil {
			log.Info().
				Str("negotiation_id", out.Result.ID()).
				Str("decision", string(out.Decision)).
				Bool("finished", screen.Finished()).
				Msg("permission screen closed")
		}
		fmt.Print(app.Theme.RenderDecision(*out))
	}
	return nil
}
