// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"reflect"
	"testing"
)

const scanHeader = "BSSID              SSID            MODE   CHAN  RATE        SIGNAL  BARS"

func TestParseScanOutput(t *testing.T) {
	for _, tt := range []struct {
		name    string
		out     string
		want    []Record
		skipped int
	}{
		{
			name: "empty",
			out:  "",
		},
		{
			name: "whitespace_only",
			out:  " \n\t\n",
		},
		{
			name: "header_only",
			out:  scanHeader + "\n",
		},
		{
			name: "ssid_with_space",
			out: scanHeader + "\n" +
				"AA:BB:CC:DD:EE:FF  Home Network    Infra  6  54 Mbit/s  70  ▂▄▆_\n",
			want: []Record{
				{"AA:BB:CC:DD:EE:FF", "Home Network", "Infra", "6", "54 Mbit/s", "70", "▂▄▆_"},
			},
		},
		{
			name: "rate_without_unit",
			out: scanHeader + "\n" +
				"11:22:33:44:55:66  Office  Infra  11  130  9  ▂___\n",
			want: []Record{
				{"11:22:33:44:55:66", "Office", "Infra", "11", "130", "9", "▂___"},
			},
		},
		{
			name: "keeps_order_and_duplicates",
			out: scanHeader + "\n" +
				"AA:BB:CC:DD:EE:01  first     Infra  1   54 Mbit/s   90  ▂▄▆█\n" +
				"AA:BB:CC:DD:EE:01  first     Infra  1   54 Mbit/s   90  ▂▄▆█\n" +
				"AA:BB:CC:DD:EE:02  second    Infra  36  270 Mbit/s  40  ▂▄__\n",
			want: []Record{
				{"AA:BB:CC:DD:EE:01", "first", "Infra", "1", "54 Mbit/s", "90", "▂▄▆█"},
				{"AA:BB:CC:DD:EE:01", "first", "Infra", "1", "54 Mbit/s", "90", "▂▄▆█"},
				{"AA:BB:CC:DD:EE:02", "second", "Infra", "36", "270 Mbit/s", "40", "▂▄__"},
			},
		},
		{
			name: "malformed_row_in_the_middle",
			out: scanHeader + "\n" +
				"AA:BB:CC:DD:EE:01  before  Infra  1  54 Mbit/s  90  ▂▄▆█\n" +
				"AA:BB:CC:DD:EE:02  short  Infra  6\n" +
				"AA:BB:CC:DD:EE:04  no bars  Infra  6  54 Mbit/s  70\n" +
				"AA:BB:CC:DD:EE:03  after   Infra  6  54 Mbit/s  20  ▂___\n",
			want: []Record{
				{"AA:BB:CC:DD:EE:01", "before", "Infra", "1", "54 Mbit/s", "90", "▂▄▆█"},
				{"AA:BB:CC:DD:EE:03", "after", "Infra", "6", "54 Mbit/s", "20", "▂___"},
			},
			skipped: 2,
		},
		{
			name: "crlf",
			out: scanHeader + "\r\n" +
				"AA:BB:CC:DD:EE:01  cafe  Infra  1  54 Mbit/s  90  ▂▄▆█\r\n",
			want: []Record{
				{"AA:BB:CC:DD:EE:01", "cafe", "Infra", "1", "54 Mbit/s", "90", "▂▄▆█"},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := parseScanOutput(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Incorrect records. got: %+v, want: %+v", got, tt.want)
			}
			if skipped != tt.skipped {
				t.Errorf("Incorrect skipped count. got: %v, want: %v", skipped, tt.skipped)
			}
		})
	}
}

func TestParseScanOutputCount(t *testing.T) {
	out := scanHeader + "\n"
	const n = 25
	for i := 0; i < n; i++ {
		out += "AA:BB:CC:DD:EE:FF  Net Work " + string(rune('a'+i)) + "  Infra  6  54 Mbit/s  70  ▂▄▆_\n"
	}
	got := ParseScanOutput(out)
	if len(got) != n {
		t.Fatalf("Incorrect number of records. got: %v, want: %v", len(got), n)
	}
	for i, r := range got {
		if want := "Net Work " + string(rune('a'+i)); r.SSID != want {
			t.Errorf("record %d: got SSID %q, want %q", i, r.SSID, want)
		}
	}
}

func TestParseScanLine(t *testing.T) {
	for _, tt := range []struct {
		line string
		ok   bool
		ssid string
	}{
		{"AA:BB:CC:DD:EE:FF  Home Network    Infra  6  54 Mbit/s  70  ▂▄▆_", true, "Home Network"},
		{"AA:BB:CC:DD:EE:FF  --              Infra  6  54 Mbit/s  70  ▂▄▆_", true, "--"},
		{"AA:BB:CC:DD:EE:FF  Home Network    Infra  6", false, ""},
		{"AA:BB:CC:DD:EE:FF  Home Network  Infra  6  54 Mbit/s  70", false, ""},
		{"", false, ""},
	} {
		r, ok := ParseScanLine(tt.line)
		if ok != tt.ok || r.SSID != tt.ssid {
			t.Errorf("ParseScanLine(%q) = %+v, %v, want SSID %q, %v", tt.line, r, ok, tt.ssid, tt.ok)
		}
	}
}
