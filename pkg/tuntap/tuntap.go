// Package tuntap creates Linux TUN and TAP interfaces through /dev/net/tun.
//
// A Builder collects the interface configuration and opens one of five
// device types. Tun and Tap are single-queue devices. MultiQueueTun and
// MultiQueueTap can open additional Queues bound to the same interface.
// Every device type satisfies Device, so frame-handling code can be
// written once for all of them.
//
// All operations are blocking syscalls issued in call order. The package
// starts no goroutines and holds no locks.
package tuntap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tuntap-go/pkg/logx"
)

// MaxNameLen is the longest interface name the kernel keeps: IFNAMSIZ
// minus the terminating NUL. Longer names are truncated, not rejected.
const MaxNameLen = 15

// ErrUnsupported is returned on platforms without /dev/net/tun.
var ErrUnsupported = errors.New("tuntap: not supported on this platform")

// Flags are the ifr_flags bits passed with TUNSETIFF.
type Flags uint16

const (
	FlagTun          Flags = 0x0001
	FlagTap          Flags = 0x0002
	FlagMultiQueue   Flags = 0x0100
	FlagNoPacketInfo Flags = 0x1000
	FlagVnetHdr      Flags = 0x4000
	FlagTunExcl      Flags = 0x8000

	// Only valid with TUNSETQUEUE.
	flagAttachQueue Flags = 0x0200
	flagDetachQueue Flags = 0x0400
)

// IffUp is the interface-level "up" flag (SIOCSIFFLAGS). It lives in a
// different namespace from the TUNSETIFF flags above.
const IffUp = 0x0001

var flagNames = []struct {
	f    Flags
	name string
}{
	{FlagTun, "tun"},
	{FlagTap, "tap"},
	{FlagMultiQueue, "multi_queue"},
	{flagAttachQueue, "attach_queue"},
	{flagDetachQueue, "detach_queue"},
	{FlagNoPacketInfo, "no_pi"},
	{FlagVnetHdr, "vnet_hdr"},
	{FlagTunExcl, "tun_excl"},
}

func (f Flags) String() string {
	var parts []string
	for _, n := range flagNames {
		if f&n.f != 0 {
			parts = append(parts, n.name)
			f &^= n.f
		}
	}
	if f != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("0x%04x", uint16(f)))
	}
	return strings.Join(parts, "|")
}

// Mode selects the link layer of the interface.
type Mode int

const (
	ModeTun Mode = iota
	ModeTap
)

// flag is zero for a Mode outside ModeTun and ModeTap.
func (m Mode) flag() Flags {
	switch m {
	case ModeTun:
		return FlagTun
	case ModeTap:
		return FlagTap
	}
	return 0
}

func (m Mode) String() string {
	switch m {
	case ModeTun:
		return "tun"
	case ModeTap:
		return "tap"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Device is the capability shared by every open interface handle: raw
// frame I/O plus access to the descriptor for poll/select integration.
type Device interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Close() error
	Name() string
	Fd() uintptr
	Flags() Flags
}

// MultiQueue is implemented by devices opened with FlagMultiQueue.
type MultiQueue interface {
	Device
	OpenQueue() (*Queue, error)
}

// QueueController enables or disables delivery on one queue of a
// multi-queue interface.
type QueueController interface {
	Attach() error
	Detach() error
}

var (
	_ Device          = (*Tun)(nil)
	_ Device          = (*Tap)(nil)
	_ Device          = (*Queue)(nil)
	_ MultiQueue      = (*MultiQueueTun)(nil)
	_ MultiQueue      = (*MultiQueueTap)(nil)
	_ QueueController = (*MultiQueueTun)(nil)
	_ QueueController = (*MultiQueueTap)(nil)
	_ QueueController = (*Queue)(nil)
)

// handle owns exactly one descriptor on /dev/net/tun.
type handle struct {
	file  *os.File
	name  string
	flags Flags
	sys   *opener
}

func (h *handle) Read(b []byte) (int, error) {
	return h.file.Read(b)
}

func (h *handle) Write(b []byte) (int, error) {
	return h.file.Write(b)
}

func (h *handle) Close() error {
	if h.file != nil {
		logx.Printf(1, "close %s", h.name)
		return h.file.Close()
	}
	return nil
}

// Name is the interface name the kernel resolved at open time.
func (h *handle) Name() string { return h.name }

// Fd returns the descriptor. As with os.File.Fd, the descriptor is put
// into blocking mode and stays valid only until Close.
func (h *handle) Fd() uintptr { return h.file.Fd() }

func (h *handle) Flags() Flags { return h.flags }

// Tun is a single-queue layer 3 device.
type Tun struct{ handle }

// Tap is a single-queue layer 2 device.
type Tap struct{ handle }

// Queue is an additional descriptor on a multi-queue interface. It owns
// its descriptor independently of the device it was opened from.
type Queue struct{ handle }

func (q *Queue) Attach() error { return q.sys.setQueue(&q.handle, true) }
func (q *Queue) Detach() error { return q.sys.setQueue(&q.handle, false) }

type multiQueue struct{ handle }

// OpenQueue opens a new descriptor on the same interface with the same
// flags. Persistence and ownership are left as the first open set them.
func (m *multiQueue) OpenQueue() (*Queue, error) {
	h, err := m.sys.open(openParams{name: m.name, flags: m.flags, persist: persistKeep, owner: -1, group: -1})
	if err != nil {
		return nil, err
	}
	return &Queue{h}, nil
}

func (m *multiQueue) Attach() error { return m.sys.setQueue(&m.handle, true) }
func (m *multiQueue) Detach() error { return m.sys.setQueue(&m.handle, false) }

// MultiQueueTun is a layer 3 device that can open additional queues.
type MultiQueueTun struct{ multiQueue }

// MultiQueueTap is a layer 2 device that can open additional queues.
type MultiQueueTap struct{ multiQueue }

// Features reports the TUNSETIFF flags the running kernel supports.
func Features() (Flags, error) {
	return kernel.features()
}
