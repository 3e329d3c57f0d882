package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"favicongen/config"
	"favicongen/render"
)

func newSizesCmd(common *commonOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "Print the output table and the content size of each entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, common, config.Overrides{})
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFORMAT\tSIZE\tINNER")
			for _, o := range cfg.Outputs {
				sizes := make([]string, 0, len(o.Sizes()))
				inner := make([]string, 0, len(o.Sizes()))
				for _, s := range o.Sizes() {
					sizes = append(sizes, fmt.Sprintf("%dx%d", s, s))
					in := render.Inner(s, cfg.Options.Padding)
					inner = append(inner, fmt.Sprintf("%dx%d", in, in))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Name, o.Format, strings.Join(sizes, ","), strings.Join(inner, ","))
			}
			return tw.Flush()
		},
	}
}
