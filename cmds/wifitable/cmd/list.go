package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/u-root/wifitable/pkg/table"
	"github.com/u-root/wifitable/pkg/wifi"
)

type listOptions struct {
	sortBy     string
	descending bool
	filter     string
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the visible networks once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context(), cmd.OutOrStdout(), newWorker(cfg, logger), listOpts)
	},
}

// runList prints one scan. Columns are separated by at least two spaces,
// the same layout nmcli uses.
func runList(ctx context.Context, w io.Writer, worker wifi.WiFi, opts listOptions) error {
	var column table.Column
	if opts.sortBy != "" {
		var err error
		if column, err = table.ParseColumn(opts.sortBy); err != nil {
			return err
		}
	}

	records, err := worker.Scan(ctx)
	if err != nil {
		return err
	}
	records = table.Filter(records, opts.filter)
	if opts.sortBy != "" {
		records = table.Sort(records, column, opts.descending)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Header(), "\t"))
	for _, r := range records {
		fmt.Fprintln(tw, strings.Join(table.Row(r), "\t"))
	}
	return tw.Flush()
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.sortBy, "sort", "s", "", "sort by this column (BSSID, SSID, Mode, Chan, Rate, Signal, Bars)")
	listCmd.Flags().BoolVarP(&listOpts.descending, "desc", "d", false, "sort in descending order")
	listCmd.Flags().StringVarP(&listOpts.filter, "filter", "f", "", "only networks whose SSID contains this text, ignoring case")
	rootCmd.AddCommand(listCmd)
}
