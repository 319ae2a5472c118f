// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main runs the scan listing and shows, line by line, what the
// parser makes of it, to make spotting unparsed rows easier.
//
// Synopsis:
//
//	scanDebug          run nmcli
//	scanDebug FILE     read a saved listing, "-" for stdin
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/u-root/wifitable/pkg/wifi"
)

func listing(args []string) ([]byte, error) {
	switch {
	case len(args) == 0:
		cmd := exec.Command("nmcli", "-f", "BSSID,SSID,MODE,CHAN,RATE,SIGNAL,BARS", "device", "wifi", "list")
		cmd.Stderr = os.Stderr
		fmt.Println("nmcli cmd.Args: ", cmd.Args)
		return cmd.Output()
	case args[0] == "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(args[0])
	}
}

func main() {
	out, err := listing(os.Args[1:])
	if err != nil {
		fmt.Println("listing error: ", err)
		os.Exit(1)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	fmt.Printf("header: %q\n", lines[0])
	for i, line := range lines[1:] {
		r, ok := wifi.ParseScanLine(line)
		if !ok {
			fmt.Printf("%3d SKIPPED %q\n", i+1, line)
			continue
		}
		fmt.Printf("%3d %+v\n", i+1, r)
	}
}
