package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/u-root/wifitable/pkg/iface"
	"github.com/u-root/wifitable/pkg/wifi"
)

// Config is set from the persistent flags of the root command.
type Config struct {
	NMCLI           string
	Interface       string
	SelectInterface bool
	Rescan          bool
	ScanTimeout     time.Duration
	ConnectTimeout  time.Duration
	LogFile         string
	Verbose         bool
	Demo            bool
}

var (
	cfg    Config
	logger = logrus.New()
)

// demoNetworks is what --demo shows instead of a real scan.
var demoNetworks = []wifi.Record{
	{BSSID: "3C:A6:2F:11:22:33", SSID: "Home Network", Mode: "Infra", Channel: "6", Rate: "270 Mbit/s", Signal: "82", Bars: "▂▄▆█"},
	{BSSID: "3C:A6:2F:11:22:34", SSID: "Home Network 5G", Mode: "Infra", Channel: "44", Rate: "540 Mbit/s", Signal: "64", Bars: "▂▄▆_"},
	{BSSID: "F8:1A:67:AA:BB:CC", SSID: "Office", Mode: "Infra", Channel: "11", Rate: "130 Mbit/s", Signal: "9", Bars: "▂___"},
	{BSSID: "02:11:22:33:44:55", SSID: "printer-setup", Mode: "Ad-Hoc", Channel: "1", Rate: "54 Mbit/s", Signal: "37", Bars: "▂▄__"},
}

func defaultLogFile() string {
	return filepath.Join(os.TempDir(), "wifitable.log")
}

// setupLogging sends the log to the configured file. The terminal belongs to
// the user interface.
func setupLogging(c *Config) error {
	f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if c.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// newWorker returns the WiFi implementation c asks for.
func newWorker(c Config, log logrus.FieldLogger) wifi.WiFi {
	if c.Demo {
		return wifi.NewStubWorker("Home Network", demoNetworks...)
	}
	if c.Interface != "" {
		if err := iface.Up(c.Interface); err != nil {
			log.WithError(err).Warn("could not bring the interface up")
		}
	}
	w := wifi.NewNMCLIWorker(c.NMCLI, c.Interface, log)
	w.Rescan = c.Rescan
	w.ScanTimeout = c.ScanTimeout
	w.ConnectTimeout = c.ConnectTimeout
	return w
}
