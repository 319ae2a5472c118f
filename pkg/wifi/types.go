// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import "context"

// Record is one access point seen by a scan. All fields are kept as the
// text the scan tool printed.
type Record struct {
	BSSID   string
	SSID    string
	Mode    string
	Channel string
	Rate    string
	Signal  string
	Bars    string
}

type WiFi interface {
	// Scan lists the access points currently visible.
	Scan(ctx context.Context) ([]Record, error)
	// GetID returns the SSID of the active connection, or "" if there is none.
	GetID(ctx context.Context) (string, error)
	// Connect joins the network named ssid using password.
	Connect(ctx context.Context, ssid, password string) error
}
