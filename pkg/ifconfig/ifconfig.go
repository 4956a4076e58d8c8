//go:build !linux

package ifconfig

import "errors"

var errUnsupported = errors.New("ifconfig not supported on this platform yet")

func Configure(name string, mtu int) error { return errUnsupported }
func ConfigureIPv4(name string, cidr string) error { return errUnsupported }
func Up(name string) error { return errUnsupported }
func Down(name string) error { return errUnsupported }
func Delete(name string) error { return errUnsupported }
func Exists(name string) (bool, error) { return false, errUnsupported }
func MTU(name string) (int, error) { return 0, errUnsupported }
