package main

import (
	"github.com/spf13/cobra"

	"favicongen/config"
	"favicongen/favicon"
	"favicongen/utils"
)

func newCleanCmd(common *commonOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Move previously generated favicon files to the trash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, common, config.Overrides{})
			if err != nil {
				return err
			}
			dir, err := utils.OutputDir(cfg.OutDir)
			if err != nil {
				return err
			}
			names := append(favicon.Names(cfg.Outputs), favicon.ManifestName)
			moved, err := favicon.Clean(cmd.Context(), dir, names)
			if err != nil {
				return err
			}
			utils.LoggerFrom(cmd.Context()).Info("clean finished", "trashed", len(moved), "dir", dir)
			return nil
		},
	}
}
