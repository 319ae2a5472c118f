// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iface finds wireless network interfaces and their state.
package iface

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/mdlayher/wifi"
	"github.com/vishvananda/netlink"
)

// sysClassNet is where the kernel lists network devices.
var sysClassNet = "/sys/class/net"

// Interface is a wireless network interface.
type Interface struct {
	Name         string
	HardwareAddr net.HardwareAddr
	Up           bool
}

// Label is the string this interface displays in a menu.
func (i Interface) Label() string {
	state := "down"
	if i.Up {
		state = "up"
	}
	return fmt.Sprintf("%s (%s)", i.Name, state)
}

// Wireless lists the wireless interfaces. It asks nl80211 first and falls
// back to the links that have a wireless directory in sysfs.
func Wireless() ([]Interface, error) {
	if ifs, err := nl80211Interfaces(); err == nil {
		return ifs, nil
	}

	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}
	var res []Interface
	for _, l := range links {
		attrs := l.Attrs()
		if !IsWireless(attrs.Name) {
			continue
		}
		res = append(res, Interface{
			Name:         attrs.Name,
			HardwareAddr: attrs.HardwareAddr,
			Up:           attrs.Flags&net.FlagUp != 0,
		})
	}
	return res, nil
}

func nl80211Interfaces() ([]Interface, error) {
	c, err := wifi.New()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	ifis, err := c.Interfaces()
	if err != nil {
		return nil, err
	}
	var res []Interface
	for _, ifi := range ifis {
		// P2P devices and other wdevs without a netdev have no name.
		if ifi.Name == "" {
			continue
		}
		res = append(res, Interface{
			Name:         ifi.Name,
			HardwareAddr: ifi.HardwareAddr,
			Up:           isUp(ifi.Name),
		})
	}
	return res, nil
}

// IsWireless reports whether the kernel lists name as a wireless device.
func IsWireless(name string) bool {
	_, err := os.Stat(filepath.Join(sysClassNet, name, "wireless"))
	return err == nil
}

func isUp(name string) bool {
	l, err := netlink.LinkByName(name)
	if err != nil {
		return false
	}
	return l.Attrs().Flags&net.FlagUp != 0
}

// Up sets the link up, if it is not already.
func Up(name string) error {
	l, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if l.Attrs().Flags&net.FlagUp != 0 {
		return nil
	}
	if err := netlink.LinkSetUp(l); err != nil {
		return fmt.Errorf("%s: set up: %w", name, err)
	}
	return nil
}

// Current returns the SSID name is associated with, or "" if none.
func Current(name string) (string, error) {
	c, err := wifi.New()
	if err != nil {
		return "", err
	}
	defer c.Close()

	ifis, err := c.Interfaces()
	if err != nil {
		return "", err
	}
	for _, ifi := range ifis {
		if ifi.Name != name {
			continue
		}
		bss, err := c.BSS(ifi)
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return bss.SSID, nil
	}
	return "", fmt.Errorf("%s is not a wireless interface", name)
}
