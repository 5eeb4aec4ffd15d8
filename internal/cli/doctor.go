package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/config"
	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/health"
)

func newDoctorCmd(env *environment) *cobra.Command {
	var assetsDir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that icons, popup images and popup support are in place",
		Long: `Check that icons, popup images and popup support are in place.

Missing toast icons and a missing claude CLI are reported as warnings; a
missing or undecodable popup image fails the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("assets-dir") {
				overrides["assets_dir"] = assetsDir
			}
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath, overrides)
			if err != nil {
				return err
			}

			report := health.RunHealthChecks(health.Options{
				AssetsDir: cfg.AssetsDir,
				LookPath:  env.lookPath,
			})
			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
			if !report.Passed {
				return clierrors.NewDisplayError("some checks failed",
					"copy the images directory next to the claude-notify binary, or pass --assets-dir")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assetsDir, "assets-dir", "", "Directory holding the icons and popup images (default <executable dir>/images)")

	return cmd
}
