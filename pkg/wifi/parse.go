// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"regexp"
	"strings"
)

// scanLineRE splits one row of the listing. The SSID may hold single spaces,
// so it ends at the first run of two or more spaces. The rate column is a
// number optionally followed by its unit ("54 Mbit/s"). Rate and signal
// start with a digit, so a missing column cannot be filled by the unit.
var scanLineRE = regexp.MustCompile(`^(\S+)\s+(.+?)\s{2,}(\S+)\s+(\S+)\s+(\d\S*(?: [^\s\d]\S*)?)\s+(\d\S*)\s+(\S+)`)

// ParseScanOutput turns the tabular listing into records, in the order the
// tool printed them. The first line is the header. Rows that do not have
// all seven columns are dropped.
func ParseScanOutput(out string) []Record {
	res, _ := parseScanOutput(out)
	return res
}

// parseScanOutput also reports how many rows were dropped.
func parseScanOutput(out string) ([]Record, int) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, 0
	}
	lines := strings.Split(out, "\n")[1:]

	var res []Record
	skipped := 0
	for _, line := range lines {
		r, ok := ParseScanLine(line)
		if !ok {
			skipped++
			continue
		}
		res = append(res, r)
	}
	return res, skipped
}

// ParseScanLine parses one data row of the listing.
func ParseScanLine(line string) (Record, bool) {
	m := scanLineRE.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return Record{}, false
	}
	return Record{
		BSSID:   m[1],
		SSID:    m[2],
		Mode:    m[3],
		Channel: m[4],
		Rate:    m[5],
		Signal:  m[6],
		Bars:    m[7],
	}, true
}
