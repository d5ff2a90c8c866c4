package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/oneuniverse/onboard/internal/infrastructure/config"
)

const redacted = "********"

var configWriteSchema bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration and its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and ONBOARD_*
environment variables are merged. The client secret is masked.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config file JSON schema",
	Long: `Print the JSON schema of config.toml for editor completion.

With --write the schema is saved next to the config file instead.`,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)

	configSchemaCmd.Flags().BoolVar(&configWriteSchema, "write", false, "write config.schema.json to the config directory")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := *app.Config
	if cfg.OAuth.ClientSecret != "" {
		cfg.OAuth.ClientSecret = redacted
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	fmt.Println(app.Theme.Subtle.Render("# " + app.ConfigFile()))
	fmt.Print(string(data))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if !configWriteSchema {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	if err := config.EnsureDirectories(); err != nil {
		return err
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	path, err := config.WriteSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
