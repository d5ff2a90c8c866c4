package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oneuniverse/onboard/internal/cli/styles"
	"github.com/oneuniverse/onboard/internal/domain/entity"
)

const defaultAuditLimit = 20

var (
	auditJSON  bool
	auditLimit int
)

var auditCmd = &cobra.Command{
	Use:   "audit [negotiation-id]",
	Short: "Show recorded consent decisions",
	Long: `Show the decisions of past negotiations, newest first.

Only outcome metadata is recorded: tokens never reach the audit database.
Pass a negotiation id to show a single negotiation in negotiation order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output as JSON")
	auditCmd.Flags().IntVar(&auditLimit, "limit", defaultAuditLimit, "maximum records to show")
}

func runAudit(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.Audit == nil {
		return fmt.Errorf("consent audit is disabled (set audit.enabled = true)")
	}

	var (
		records []*entity.ConsentRecord
		err     error
	)
	if len(args) == 1 {
		records, err = app.Audit.ListByNegotiation(app.Ctx(), args[0])
	} else {
		records, err = app.Audit.ListRecent(app.Ctx(), auditLimit)
	}
	if err != nil {
		return fmt.Errorf("list consent records: %w", err)
	}

	if auditJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println(app.Theme.Subtle.Render("No consent decisions recorded yet."))
		return nil
	}
	fmt.Println(styles.RenderAuditTable(app.Theme, records))
	return nil
}
