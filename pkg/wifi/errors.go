// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import "fmt"

// ScanUnavailableError means the listing command could not be started,
// timed out or exited with a non-zero status.
type ScanUnavailableError struct {
	Err error
	// Stderr is the tool's diagnostic output, if any.
	Stderr string
}

func (e *ScanUnavailableError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("wifi scan unavailable: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("wifi scan unavailable: %v", e.Err)
}

func (e *ScanUnavailableError) Unwrap() error {
	return e.Err
}

// ConnectFailedError means the connect command did not succeed.
type ConnectFailedError struct {
	SSID   string
	Err    error
	Stderr string
}

func (e *ConnectFailedError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("failed to connect to %q: %v: %s", e.SSID, e.Err, e.Stderr)
	}
	return fmt.Sprintf("failed to connect to %q: %v", e.SSID, e.Err)
}

func (e *ConnectFailedError) Unwrap() error {
	return e.Err
}
