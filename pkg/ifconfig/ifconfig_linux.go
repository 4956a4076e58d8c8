//go:build linux

package ifconfig

import (
	"errors"

	"github.com/vishvananda/netlink"

	"tuntap-go/pkg/logx"
)

func link(name string) (netlink.Link, error) {
	l, err := netlink.LinkByName(name)
	if err != nil {
		logx.Printf(1, "link %s: %v", name, err)
		return nil, err
	}
	return l, nil
}

// Configure sets the MTU of name, when mtu is positive, and brings it up.
func Configure(name string, mtu int) error {
	l, err := link(name)
	if err != nil {
		return err
	}
	if mtu > 0 {
		if err := netlink.LinkSetMTU(l, mtu); err != nil {
			return err
		}
		logx.Printf(1, "%s mtu %d", name, mtu)
	}
	return netlink.LinkSetUp(l)
}

// ConfigureIPv4 adds cidr (for example "10.0.0.1/24") to name and brings
// it up.
func ConfigureIPv4(name string, cidr string) error {
	l, err := link(name)
	if err != nil {
		return err
	}
	addr, err := netlink.ParseAddr(cidr)
	if err != nil {
		return err
	}
	if err := netlink.AddrAdd(l, addr); err != nil {
		return err
	}
	logx.Printf(1, "%s addr %s", name, cidr)
	return netlink.LinkSetUp(l)
}

func Up(name string) error {
	l, err := link(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetUp(l)
}

func Down(name string) error {
	l, err := link(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetDown(l)
}

// Delete removes the interface. This is how a persistent interface is
// torn down once no process holds it.
func Delete(name string) error {
	l, err := link(name)
	if err != nil {
		return err
	}
	logx.Printf(1, "delete %s", name)
	return netlink.LinkDel(l)
}

// Exists reports whether the kernel knows an interface called name.
func Exists(name string) (bool, error) {
	_, err := netlink.LinkByName(name)
	var nf netlink.LinkNotFoundError
	if errors.As(err, &nf) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func MTU(name string) (int, error) {
	l, err := link(name)
	if err != nil {
		return 0, err
	}
	return l.Attrs().MTU, nil
}
