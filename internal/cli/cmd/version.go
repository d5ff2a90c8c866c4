package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version and build information",
	Annotations: map[string]string{annotationNoApp: "true"},
	Run: func(_ *cobra.Command, _ []string) {
		goVersion := buildInfo.GoVersion
		if goVersion == "" {
			goVersion = runtime.Version()
		}
		fmt.Printf("onboard %s (commit %s, built %s, %s)\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, goVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
