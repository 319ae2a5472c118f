package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/u-root/wifitable/pkg/wifi"
)

var rootCmd = &cobra.Command{
	Use:   "wifitable",
	Short: "Browse nearby Wi-Fi networks and connect to one",
	Long: `wifitable lists the access points NetworkManager can see in a table
that can be sorted by any column and filtered by network name, and connects
to the selected network after asking for its password.

Without a terminal it prints the list once, like "wifitable list".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(&cfg)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return runList(cmd.Context(), cmd.OutOrStdout(), newWorker(cfg, logger), listOptions{})
		}
		return runInteractive(cmd.Context(), &cfg, logger)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.NMCLI, "nmcli", "nmcli", "NetworkManager command line tool")
	f.StringVarP(&cfg.Interface, "interface", "i", "", "wireless interface to use, all of them if empty")
	f.BoolVar(&cfg.SelectInterface, "select-interface", false, "choose the wireless interface from a menu")
	f.BoolVar(&cfg.Rescan, "rescan", false, "ask NetworkManager for a fresh scan")
	f.DurationVar(&cfg.ScanTimeout, "scan-timeout", wifi.DefaultScanTimeout, "give up on a scan after this long")
	f.DurationVar(&cfg.ConnectTimeout, "connect-timeout", wifi.DefaultConnectTimeout, "give up on a connection attempt after this long")
	f.StringVar(&cfg.LogFile, "log-file", defaultLogFile(), "file to write the log to")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose logging")
	f.BoolVar(&cfg.Demo, "demo", false, "show canned networks instead of scanning")
}
