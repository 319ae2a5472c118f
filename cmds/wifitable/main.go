// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// wifitable lists nearby Wi-Fi networks through NetworkManager and connects
// to one of them.
//
// Synopsis:
//
//	wifitable [--interface IF] [--rescan] [--select-interface]
//	wifitable list [--sort COLUMN] [--desc] [--filter TEXT]
//	wifitable connect SSID [--password PASS]
//	wifitable interfaces
package main

import "github.com/u-root/wifitable/cmds/wifitable/cmd"

func main() {
	cmd.Execute()
}
