// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table holds the scan results shown to the user and the sort and
// filter operations on them.
package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/u-root/wifitable/pkg/wifi"
)

// Column is one of the seven columns of the network table.
type Column int

const (
	BSSID Column = iota
	SSID
	Mode
	Channel
	Rate
	Signal
	Bars
)

// Columns lists every column in display order.
var Columns = []Column{BSSID, SSID, Mode, Channel, Rate, Signal, Bars}

var headers = [...]string{"BSSID", "SSID", "Mode", "Chan", "Rate", "Signal", "Bars"}

func (c Column) String() string {
	if c < 0 || int(c) >= len(headers) {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return headers[c]
}

// Value returns the text r shows in column c.
func (c Column) Value(r wifi.Record) string {
	switch c {
	case BSSID:
		return r.BSSID
	case SSID:
		return r.SSID
	case Mode:
		return r.Mode
	case Channel:
		return r.Channel
	case Rate:
		return r.Rate
	case Signal:
		return r.Signal
	case Bars:
		return r.Bars
	}
	return ""
}

// ParseColumn accepts a header label or field name, in any case.
func ParseColumn(s string) (Column, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "channel" {
		return Channel, nil
	}
	for _, c := range Columns {
		if strings.ToLower(c.String()) == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q, want one of %s", s, strings.Join(Header(), ", "))
}

// Header returns the column labels.
func Header() []string {
	return append([]string(nil), headers[:]...)
}

// Row returns the cells of r in column order.
func Row(r wifi.Record) []string {
	row := make([]string, len(Columns))
	for i, c := range Columns {
		row[i] = c.Value(r)
	}
	return row
}

// Sort returns a copy of records ordered by the text of column c. Ordering
// is by string, so a signal of "70" sorts before "9". Equal values keep
// their scan order.
func Sort(records []wifi.Record, c Column, descending bool) []wifi.Record {
	res := append([]wifi.Record(nil), records...)
	sort.SliceStable(res, func(i, j int) bool {
		a, b := c.Value(res[i]), c.Value(res[j])
		if descending {
			return a > b
		}
		return a < b
	})
	return res
}

// Filter keeps the records whose SSID contains substr, ignoring case.
func Filter(records []wifi.Record, substr string) []wifi.Record {
	if substr == "" {
		return append([]wifi.Record(nil), records...)
	}
	substr = strings.ToLower(substr)
	var res []wifi.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SSID), substr) {
			res = append(res, r)
		}
	}
	return res
}
