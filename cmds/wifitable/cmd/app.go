package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	ui "github.com/gizak/termui/v3"
	"github.com/sirupsen/logrus"
	"github.com/u-root/wifitable/pkg/iface"
	"github.com/u-root/wifitable/pkg/menu"
	"github.com/u-root/wifitable/pkg/table"
	"github.com/u-root/wifitable/pkg/wifi"
)

const appTitle = "Wi-Fi Networks"

// app is the interactive table and the calls it makes to the worker.
type app struct {
	ctx      context.Context
	worker   wifi.WiFi
	state    *table.State
	log      logrus.FieldLogger
	uiEvents <-chan ui.Event
}

func newApp(ctx context.Context, worker wifi.WiFi, log logrus.FieldLogger, uiEvents <-chan ui.Event) *app {
	return &app{
		ctx:      ctx,
		worker:   worker,
		state:    table.NewState(),
		log:      log,
		uiEvents: uiEvents,
	}
}

func runInteractive(ctx context.Context, c *Config, log logrus.FieldLogger) error {
	if err := menu.Init(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	defer menu.Close()
	uiEvents := menu.PollEvents()

	if c.SelectInterface && c.Interface == "" {
		name, err := selectInterface(uiEvents)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		c.Interface = name
	}

	return newApp(ctx, newWorker(*c, log), log, uiEvents).run()
}

// selectInterface lets the user pick a wireless interface. With no wireless
// interface found it returns "" and scans happen on every device.
func selectInterface(uiEvents <-chan ui.Event) (string, error) {
	ifs, err := iface.Wireless()
	if err != nil {
		return "", err
	}
	if len(ifs) == 0 {
		_, err := menu.DisplayResult([]string{"No wireless network interfaces found, scanning on all devices."}, uiEvents)
		return "", err
	}

	var entries []menu.Entry
	for _, i := range ifs {
		entries = append(entries, i)
	}
	entry, err := menu.DisplayMenu("Network Interfaces", "Choose an option", entries, uiEvents)
	if err != nil {
		return "", err
	}
	i, ok := entry.(iface.Interface)
	if !ok {
		return "", fmt.Errorf("Bad menu entry.")
	}
	return i.Name, nil
}

// run scans once and shows the table until the user quits.
func (a *app) run() error {
	err := a.refresh()
	if err == nil {
		err = menu.DisplayTable(appTitle, a.state, menu.TableActions{
			Refresh: a.refresh,
			Connect: a.connect,
			Title:   a.title,
		}, a.uiEvents)
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *app) title() string {
	id, err := a.worker.GetID(a.ctx)
	if err != nil {
		a.log.WithError(err).Debug("could not get the active network")
		return appTitle
	}
	if id == "" {
		return appTitle
	}
	return fmt.Sprintf("%s (connected: %s)", appTitle, id)
}

// refresh replaces the table with a new scan. A failed scan empties the
// table and is reported; only an error of the notification itself, such as
// io.EOF, is returned.
func (a *app) refresh() error {
	p := menu.NewProgress("Scanning for wireless networks", false)
	records, err := a.worker.Scan(a.ctx)
	p.Close()
	if err != nil {
		a.log.WithError(err).Warn("scan unavailable")
		a.state.Replace(nil)
		_, err = menu.DisplayResult([]string{"Wi-Fi scan unavailable", err.Error()}, a.uiEvents)
		return err
	}
	a.log.WithField("networks", len(records)).Info("scan")
	a.state.Replace(records)
	return nil
}

// connect asks for the password of r and joins the network. The result is
// reported to the user; nothing is retried.
func (a *app) connect(r wifi.Record) error {
	pass, err := menu.NewPasswordWindow(fmt.Sprintf("Enter password for %s:", r.SSID), menu.AlwaysValid, a.uiEvents)
	if err != nil {
		return err
	}
	if pass == "" || pass == menu.Escaped {
		return nil
	}

	p := menu.NewProgress(fmt.Sprintf("Connecting to %s", r.SSID), true)
	err = a.worker.Connect(a.ctx, r.SSID, pass)
	p.Close()

	msg := []string{fmt.Sprintf("Connected to %s", r.SSID)}
	if err != nil {
		msg = []string{fmt.Sprintf("Failed to connect to %s", r.SSID)}
		var cf *wifi.ConnectFailedError
		if errors.As(err, &cf) && cf.Stderr != "" {
			msg = append(msg, cf.Stderr)
		} else {
			msg = append(msg, err.Error())
		}
	}
	_, err = menu.DisplayResult(msg, a.uiEvents)
	return err
}
