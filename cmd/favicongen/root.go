package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"favicongen/config"
	"favicongen/favicon"
	"favicongen/utils"
)

// commonOptions are the flags shared by every subcommand.
type commonOptions struct {
	configFile string
	preset     string
	out        string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	common := &commonOptions{}
	gen := &generateOptions{}

	root := &cobra.Command{
		Use:   "favicongen",
		Short: "Render a logo into the favicon files a website needs",
		Long: `favicongen scales one logo image onto square canvases and writes favicon.ico
plus the PNG sizes browsers, iOS and Android look for. Without a subcommand it
runs generate.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l := utils.NewLogger(cmd.ErrOrStderr(), "favicongen", common.verbose)
			cmd.SetContext(utils.WithLogger(cmd.Context(), l))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, common, gen)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&common.configFile, "config", "c", "", "config file (default ./"+config.DefaultFile+" when present)")
	pf.StringVarP(&common.preset, "preset", "p", "", "output preset: transparent or white")
	pf.StringVarP(&common.out, "out", "o", "", "output directory (default current directory)")
	pf.BoolVarP(&common.verbose, "verbose", "v", false, "enable verbose logging")
	bindGenerateFlags(root, gen)

	root.AddCommand(newGenerateCmd(common))
	root.AddCommand(newCleanCmd(common))
	root.AddCommand(newSizesCmd(common))
	return root
}

// resolve merges flags, the config file and the preset.
func resolve(cmd *cobra.Command, common *commonOptions, o config.Overrides) (favicon.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return favicon.Config{}, err
	}
	f, path, err := config.Find(wd, common.configFile)
	if err != nil {
		return favicon.Config{}, err
	}
	if path != "" {
		utils.LoggerFrom(cmd.Context()).Debug("loaded config", "path", filepath.Clean(path))
	}
	o.Preset = common.preset
	o.Out = common.out
	return config.Resolve(f, o)
}
