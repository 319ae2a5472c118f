// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/u-root/wifitable/pkg/tlog"
)

// fakeNMCLI writes a shell script standing in for nmcli. The script records
// its arguments next to itself and then runs body.
func fakeNMCLI(t *testing.T, body string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "nmcli")
	argsPath := filepath.Join(dir, "args")
	script := "#!/bin/sh\nfor a in \"$@\"; do echo \"$a\"; done > " + argsPath + "\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path, argsPath
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("fake nmcli was not run: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func newTestWorker(t *testing.T, cmd string) *NMCLIWorker {
	w := NewNMCLIWorker(cmd, "", tlog.Logger(t))
	w.ScanTimeout = 5 * time.Second
	w.ConnectTimeout = 5 * time.Second
	return w
}

func TestScan(t *testing.T) {
	cmd, argsPath := fakeNMCLI(t, `cat <<'OUT'
BSSID              SSID          MODE   CHAN  RATE       SIGNAL  BARS
AA:BB:CC:DD:EE:FF  Home Network  Infra  6     54 Mbit/s  70      ▂▄▆_
11:22:33:44:55:66  Office        Infra  11    54 Mbit/s  9       ▂___
garbage
OUT`)
	w := newTestWorker(t, cmd)
	w.Interface = "wlan0"
	w.Rescan = true

	got, err := w.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(got) != 2 || got[0].SSID != "Home Network" || got[1].SSID != "Office" {
		t.Errorf("Incorrect records: %+v", got)
	}

	want := []string{"-f", scanFields, "device", "wifi", "list", "ifname", "wlan0", "--rescan", "yes"}
	if args := readArgs(t, argsPath); strings.Join(args, " ") != strings.Join(want, " ") {
		t.Errorf("Incorrect arguments. got: %q, want: %q", args, want)
	}
}

func TestScanUnavailable(t *testing.T) {
	failing, _ := fakeNMCLI(t, `echo "Error: NetworkManager is not running." >&2; exit 8`)
	hanging, _ := fakeNMCLI(t, `exec sleep 10`)

	for _, tt := range []struct {
		name    string
		cmd     string
		timeout time.Duration
		stderr  string
	}{
		{
			name:   "nonzero_exit",
			cmd:    failing,
			stderr: "Error: NetworkManager is not running.",
		},
		{
			name: "missing_binary",
			cmd:  filepath.Join(t.TempDir(), "does-not-exist"),
		},
		{
			name:    "timeout",
			cmd:     hanging,
			timeout: 200 * time.Millisecond,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorker(t, tt.cmd)
			if tt.timeout != 0 {
				w.ScanTimeout = tt.timeout
			}
			start := time.Now()
			got, err := w.Scan(context.Background())
			if time.Since(start) > 5*time.Second {
				t.Errorf("Scan did not honour the timeout")
			}
			if len(got) != 0 {
				t.Errorf("Expected no records, got %+v", got)
			}
			var su *ScanUnavailableError
			if !errors.As(err, &su) {
				t.Fatalf("Expected *ScanUnavailableError, got %T: %v", err, err)
			}
			if su.Stderr != tt.stderr {
				t.Errorf("Incorrect stderr. got: %q, want: %q", su.Stderr, tt.stderr)
			}
		})
	}
}

func TestConnect(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd, argsPath := fakeNMCLI(t, `echo "Device 'wlan0' successfully activated."`)
		w := newTestWorker(t, cmd)
		w.Interface = "wlan0"
		if err := w.Connect(context.Background(), "Home Network", "hunter2"); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		want := []string{"device", "wifi", "connect", "Home Network", "password", "hunter2", "ifname", "wlan0"}
		if args := readArgs(t, argsPath); strings.Join(args, "|") != strings.Join(want, "|") {
			t.Errorf("Incorrect arguments. got: %q, want: %q", args, want)
		}
	})

	t.Run("failure", func(t *testing.T) {
		msg := "Error: Connection activation failed: Secrets were required, but not provided."
		cmd, _ := fakeNMCLI(t, `echo "`+msg+`" >&2; exit 4`)
		w := newTestWorker(t, cmd)
		err := w.Connect(context.Background(), "Office", "wrong")
		var cf *ConnectFailedError
		if !errors.As(err, &cf) {
			t.Fatalf("Expected *ConnectFailedError, got %T: %v", err, err)
		}
		if cf.SSID != "Office" || cf.Stderr != msg {
			t.Errorf("Incorrect error: %+v", cf)
		}
		if strings.Contains(err.Error(), "wrong") {
			t.Errorf("Error message leaks the password: %v", err)
		}
	})
}

func TestGetID(t *testing.T) {
	for _, tt := range []struct {
		name string
		out  string
		want string
	}{
		{"connected", `no:Office\nyes:Home Network\n`, "Home Network"},
		{"escaped_colon", `no:Office\nyes:Cafe\\:Bar\n`, "Cafe:Bar"},
		{"not_connected", `no:Office\nno:Home\n`, ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := fakeNMCLI(t, `printf '`+tt.out+`'`)
			got, err := newTestWorker(t, cmd).GetID(context.Background())
			if err != nil {
				t.Fatalf("GetID failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Incorrect id. got: %q, want: %q", got, tt.want)
			}
		})
	}
}

func TestStub(t *testing.T) {
	w := NewStubWorker("", Record{SSID: "a"}, Record{SSID: "b"})
	got, err := w.Scan(context.Background())
	if err != nil || len(got) != 2 {
		t.Errorf("Scan() = %v, %v", got, err)
	}
	if err := w.Connect(context.Background(), "b", "pw"); err != nil {
		t.Fatal(err)
	}
	if id, _ := w.GetID(context.Background()); id != "b" {
		t.Errorf("GetID() = %q, want %q", id, "b")
	}
}
