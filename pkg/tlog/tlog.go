// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlog

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// Testing is an io.Writer into the log of a test.
type Testing struct {
	Test *testing.T
}

// Write sends one formatted log entry to the test log.
func (t Testing) Write(p []byte) (int, error) {
	t.Test.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Logger returns a debug level logger that writes into the test log.
func Logger(t *testing.T) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(Testing{t})
	l.SetLevel(logrus.DebugLevel)
	return l
}
