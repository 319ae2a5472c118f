package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/u-root/wifitable/pkg/wifi"
	"golang.org/x/crypto/ssh/terminal"
)

var connectPassword string

var connectCmd = &cobra.Command{
	Use:   "connect SSID",
	Short: "Connect to a network by name",
	Long: `Connect to the network SSID. Without --password the password is read
from the terminal without echo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pass := connectPassword
		if pass == "" {
			var err error
			if pass, err = readPassword(cmd.ErrOrStderr(), args[0]); err != nil {
				return err
			}
		}
		return runConnect(cmd.Context(), cmd.OutOrStdout(), newWorker(cfg, logger), args[0], pass)
	},
}

func readPassword(w io.Writer, ssid string) (string, error) {
	if !isTerminal(os.Stdin) {
		return "", errors.New("no --password given and stdin is not a terminal")
	}
	fmt.Fprintf(w, "Password for %s: ", ssid)
	b, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func runConnect(ctx context.Context, w io.Writer, worker wifi.WiFi, ssid, pass string) error {
	if pass == "" {
		return errors.New("a password is required")
	}
	if err := worker.Connect(ctx, ssid, pass); err != nil {
		return err
	}
	fmt.Fprintf(w, "Connected to %s\n", ssid)
	return nil
}

func init() {
	connectCmd.Flags().StringVarP(&connectPassword, "password", "p", "", "network password")
	rootCmd.AddCommand(connectCmd)
}
