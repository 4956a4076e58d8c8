//go:build !linux

package tuntap

// DevicePath is the clone device every interface is opened through.
const DevicePath = "/dev/net/tun"

type opener struct{}

var kernel = &opener{}

func (o *opener) open(openParams) (handle, error) { return handle{}, ErrUnsupported }

func (o *opener) features() (Flags, error) { return 0, ErrUnsupported }

func (o *opener) setQueue(*handle, bool) error { return ErrUnsupported }
