package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/u-root/wifitable/pkg/iface"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces and the network each is on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifs, err := iface.Wireless()
		if err != nil {
			return err
		}
		return printInterfaces(cmd.OutOrStdout(), ifs, func(name string) string {
			ssid, err := iface.Current(name)
			if err != nil {
				logger.WithError(err).WithField("interface", name).Debug("no association info")
			}
			return ssid
		})
	},
}

func printInterfaces(w io.Writer, ifs []iface.Interface, current func(string) string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATE\tHWADDR\tSSID")
	for _, i := range ifs {
		state := "down"
		if i.Up {
			state = "up"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.Name, state, i.HardwareAddr, current(i.Name))
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
