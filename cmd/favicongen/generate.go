package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"favicongen/config"
	"favicongen/favicon"
	"favicongen/render"
	"favicongen/utils"
)

type generateOptions struct {
	source     string
	padding    float64
	background string
	filter     string
	manifest   bool
	appName    string
	html       bool
}

func bindGenerateFlags(cmd *cobra.Command, o *generateOptions) {
	f := cmd.Flags()
	f.StringVarP(&o.source, "source", "s", "", "logo image (png, jpeg, gif, bmp, webp, ico or svg)")
	f.Float64Var(&o.padding, "padding", 0, "border on each edge as a fraction of the canvas, in [0, 0.5)")
	f.StringVarP(&o.background, "background", "b", "", `canvas colour: transparent, white, #RGB, #RRGGBB[AA] or "R,G,B"`)
	f.StringVar(&o.filter, "filter", "", "resampling filter: "+strings.Join(render.Filters(), ", "))
	f.BoolVar(&o.manifest, "manifest", false, "also write "+favicon.ManifestName)
	f.StringVar(&o.appName, "name", "", "application name for the web manifest (default: output directory name)")
	f.BoolVar(&o.html, "html", false, "print the <link> tags for the generated files")
}

func newGenerateCmd(common *commonOptions) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render every output of the preset or config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, common, o)
		},
	}
	bindGenerateFlags(cmd, o)
	return cmd
}

func runGenerate(cmd *cobra.Command, common *commonOptions, o *generateOptions) error {
	ctx := cmd.Context()
	logger := utils.LoggerFrom(ctx)

	overrides := config.Overrides{
		Source:     o.source,
		Background: o.background,
		Filter:     o.filter,
		Manifest:   o.manifest,
	}
	if cmd.Flags().Changed("padding") {
		overrides.Padding = &o.padding
	}
	cfg, err := resolve(cmd, common, overrides)
	if err != nil {
		return err
	}

	// Load before touching the output directory so a bad source leaves no files behind.
	src, err := favicon.Load(cfg.Source)
	if err != nil {
		return err
	}
	b := src.Bounds()
	logger.Info("loaded logo", "path", cfg.Source, "size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))

	if cfg.OutDir, err = utils.OutputDir(cfg.OutDir); err != nil {
		return fmt.Errorf("%w: %w", favicon.ErrIO, err)
	}

	results, err := favicon.Generate(ctx, src, cfg)
	if err != nil {
		return err
	}

	manifest := ""
	if cfg.Manifest {
		name := o.appName
		if name == "" {
			name = filepath.Base(cfg.OutDir)
		}
		path, err := favicon.WriteManifest(cfg.OutDir, name, results)
		if err != nil {
			return err
		}
		manifest = favicon.ManifestName
		logger.Info("created", "file", filepath.Base(path))
	}

	out := cmd.OutOrStdout()
	printSummary(out, results, isTerminal(out))
	if o.html {
		fmt.Fprint(out, favicon.HTMLSnippet(results, manifest))
	}
	logger.Info("all favicon files created", "count", len(results), "dir", cfg.OutDir)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && utils.IsTerminal(f)
}

// printSummary lists the results: a bulleted list for people, tab
// separated name, dimensions and ETag when piped.
func printSummary(w io.Writer, results []favicon.Result, tty bool) {
	if tty {
		fmt.Fprintln(w, "\nGenerated files:")
	}
	for _, r := range results {
		dims := fmt.Sprintf("%dx%d", r.Output.Size, r.Output.Size)
		if tty {
			fmt.Fprintf(w, "  • %s (%s)\n", r.Output.Name, dims)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Output.Name, dims, r.ETag)
	}
}
