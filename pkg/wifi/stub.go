// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import "context"

var _ = WiFi(&StubWorker{})

// StubWorker returns canned results. Connect calls are recorded.
type StubWorker struct {
	Options    []Record
	ID         string
	ScanErr    error
	ConnectErr error
	Connected  []string
}

func NewStubWorker(id string, options ...Record) *StubWorker {
	return &StubWorker{ID: id, Options: options}
}

func (w *StubWorker) Scan(ctx context.Context) ([]Record, error) {
	if w.ScanErr != nil {
		return nil, w.ScanErr
	}
	return w.Options, nil
}

func (w *StubWorker) GetID(ctx context.Context) (string, error) {
	return w.ID, nil
}

func (w *StubWorker) Connect(ctx context.Context, ssid, password string) error {
	w.Connected = append(w.Connected, ssid)
	if w.ConnectErr != nil {
		return w.ConnectErr
	}
	w.ID = ssid
	return nil
}
