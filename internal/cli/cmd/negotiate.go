package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oneuniverse/onboard/internal/application/usecase"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/logging"
)

// ErrBlocked is returned when a required permission was not granted or
// nothing was selected.
var ErrBlocked = errors.New("permission setup blocked")

var (
	negotiateCalendar       bool
	negotiateVideoHistory   bool
	negotiateDeviceActivity bool
	negotiateEmotionInput   bool
	negotiateAll            bool
	negotiateJSON           bool
)

var negotiateCmd = &cobra.Command{
	Use:   "negotiate",
	Short: "Request the selected permissions once",
	Long: `Request the selected permissions in order and print the result.

Each capability settles as granted, denied, skipped or cancelled. Press
Ctrl+C to cancel: the pending capability and everything after it are
reported as cancelled.

Examples:
  onboard negotiate --calendar --emotion-input
  onboard negotiate --all --json`,
	RunE: runNegotiate,
}

func init() {
	rootCmd.AddCommand(negotiateCmd)

	f := negotiateCmd.Flags()
	f.BoolVar(&negotiateCalendar, "calendar", false, "request Google Calendar access")
	f.BoolVar(&negotiateVideoHistory, "video-history", false, "request YouTube learning history access")
	f.BoolVar(&negotiateDeviceActivity, "device-activity", false, "request device focus data")
	f.BoolVar(&negotiateEmotionInput, "emotion-input", false, "request emotion input (microphone or text)")
	f.BoolVar(&negotiateAll, "all", false, "request every capability")
	f.BoolVar(&negotiateJSON, "json", false, "output the result as JSON")
}

// requestedCapabilities returns the capabilities the flags turn on.
// Required capabilities are enabled regardless.
func requestedCapabilities() []entity.CapabilityID {
	flags := []struct {
		id entity.CapabilityID
		on bool
	}{
		{entity.CapabilityCalendar, negotiateCalendar},
		{entity.CapabilityVideoHistory, negotiateVideoHistory},
		{entity.CapabilityDeviceActivity, negotiateDeviceActivity},
		{entity.CapabilityEmotionInput, negotiateEmotionInput},
	}
	var ids []entity.CapabilityID
	for _, f := range flags {
		if negotiateAll || f.on {
			ids = append(ids, f.id)
		}
	}
	return ids
}

func runNegotiate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	flow := app.NewFlow()
	for _, id := range requestedCapabilities() {
		if err := flow.Set(id, true); err != nil {
			return err
		}
	}

	out, err := flow.Grant(ctx)
	if err != nil {
		return err
	}
	if out.Result != nil {
		log.Info().
			Str("negotiation_id", out.Result.ID()).
			Str("decision", string(out.Decision)).
			Dur("duration", out.Result.Duration()).
			Msg("negotiation finished")
	}

	if negotiateJSON {
		if err := writeOutcomeJSON(out); err != nil {
			return err
		}
	} else {
		fmt.Print(app.Theme.RenderDecision(out))
	}

	if out.Decision == usecase.DecisionBlocked {
		return fmt.Errorf("%w: %s", ErrBlocked, out.Message)
	}
	return nil
}

func writeOutcomeJSON(out usecase.FlowOutcome) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Decision usecase.FlowDecision      `json:"decision"`
		Message  string                    `json:"message,omitempty"`
		Result   *entity.NegotiationResult `json:"result,omitempty"`
	}{
		Decision: out.Decision,
		Message:  out.Message,
		Result:   out.Result,
	})
}
