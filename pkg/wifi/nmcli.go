// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// scanFields selects the columns of the listing, in the order
// ParseScanOutput expects them.
const scanFields = "BSSID,SSID,MODE,CHAN,RATE,SIGNAL,BARS"

const (
	DefaultScanTimeout = 30 * time.Second
	// DefaultConnectTimeout matches nmcli's own activation wait.
	DefaultConnectTimeout = 90 * time.Second
)

var _ = WiFi(&NMCLIWorker{})

// NMCLIWorker implements the WiFi interface using the NetworkManager command
// line tool.
type NMCLIWorker struct {
	// Command is the nmcli binary, looked up in PATH if not absolute.
	Command string
	// Interface restricts scans and connections to one device when set.
	Interface string
	// Rescan asks NetworkManager for a fresh scan instead of its cache.
	Rescan         bool
	ScanTimeout    time.Duration
	ConnectTimeout time.Duration
	Log            logrus.FieldLogger
}

func NewNMCLIWorker(command, iface string, log logrus.FieldLogger) *NMCLIWorker {
	if command == "" {
		command = "nmcli"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &NMCLIWorker{
		Command:        command,
		Interface:      iface,
		ScanTimeout:    DefaultScanTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		Log:            log,
	}
}

func (w *NMCLIWorker) logger() logrus.FieldLogger {
	if w.Log == nil {
		return logrus.StandardLogger()
	}
	return w.Log
}

// run executes nmcli with args. Stdout and stderr are kept apart: the first
// is parsed, the second is the diagnostic shown to the user.
func (w *NMCLIWorker) run(ctx context.Context, timeout time.Duration, args ...string) ([]byte, string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, w.Command, args...)
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%s timed out after %v", w.Command, timeout)
	}
	return stdout.Bytes(), strings.TrimSpace(stderr.String()), err
}

func (w *NMCLIWorker) Scan(ctx context.Context) ([]Record, error) {
	args := []string{"-f", scanFields, "device", "wifi", "list"}
	if w.Interface != "" {
		args = append(args, "ifname", w.Interface)
	}
	if w.Rescan {
		args = append(args, "--rescan", "yes")
	}

	log := w.logger().WithField("cmd", w.Command)
	log.WithField("args", args).Debug("scanning")
	out, stderr, err := w.run(ctx, w.ScanTimeout, args...)
	if err != nil {
		log.WithError(err).WithField("stderr", stderr).Warn("scan failed")
		return nil, &ScanUnavailableError{Err: err, Stderr: stderr}
	}

	res, skipped := parseScanOutput(string(out))
	if skipped > 0 {
		log.WithField("skipped", skipped).Debug("dropped malformed scan rows")
	}
	log.WithField("networks", len(res)).Debug("scan done")
	return res, nil
}

// GetID asks for the active network in terse mode, where each row is
// "ACTIVE:SSID" with colons in the SSID escaped.
func (w *NMCLIWorker) GetID(ctx context.Context) (string, error) {
	args := []string{"-t", "-f", "ACTIVE,SSID", "device", "wifi", "list"}
	if w.Interface != "" {
		args = append(args, "ifname", w.Interface)
	}
	out, stderr, err := w.run(ctx, w.ScanTimeout, args...)
	if err != nil {
		if stderr != "" {
			return "", fmt.Errorf("%v: %s", err, stderr)
		}
		return "", err
	}
	for _, line := range strings.Split(string(out), "\n") {
		if ssid, ok := strings.CutPrefix(strings.TrimRight(line, "\r"), "yes:"); ok {
			return unescapeTerse(ssid), nil
		}
	}
	return "", nil
}

func unescapeTerse(s string) string {
	return strings.NewReplacer(`\:`, ":", `\\`, `\`).Replace(s)
}

// Connect never logs the password.
func (w *NMCLIWorker) Connect(ctx context.Context, ssid, password string) error {
	args := []string{"device", "wifi", "connect", ssid, "password", password}
	if w.Interface != "" {
		args = append(args, "ifname", w.Interface)
	}

	log := w.logger().WithFields(logrus.Fields{"cmd": w.Command, "ssid": ssid, "interface": w.Interface})
	log.Debug("connecting")
	_, stderr, err := w.run(ctx, w.ConnectTimeout, args...)
	if err != nil {
		log.WithError(err).WithField("stderr", stderr).Warn("connect failed")
		return &ConnectFailedError{SSID: ssid, Err: err, Stderr: stderr}
	}
	log.Info("connected")
	return nil
}
