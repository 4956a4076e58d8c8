package tuntap

import "fmt"

type persistMode int

const (
	// persistKeep skips TUNSETPERSIST, leaving the interface as it is.
	persistKeep persistMode = iota
	persistOff
	persistOn
)

type openParams struct {
	name    string
	flags   Flags
	persist persistMode
	owner   int
	group   int
}

// Builder accumulates the configuration of an interface and opens it.
// The zero value is not usable; start from NewBuilder or WithName.
type Builder struct {
	name       string
	persist    bool
	packetInfo bool
	multiQueue bool
	owner      int
	group      int
	sys        *opener
}

// NewBuilder returns a builder that lets the kernel pick the interface
// name (tunN or tapN).
func NewBuilder() *Builder {
	return &Builder{owner: -1, group: -1, sys: kernel}
}

// WithName returns a builder for the named interface. Names longer than
// MaxNameLen bytes are truncated.
func WithName(name string) *Builder {
	b := NewBuilder()
	b.name = name
	return b
}

// Persist keeps the interface after its last descriptor is closed.
func (b *Builder) Persist(v bool) *Builder {
	b.persist = v
	return b
}

// WithPacketInfo makes every frame carry the 4-byte packet-info header.
// Off by default.
func (b *Builder) WithPacketInfo(v bool) *Builder {
	b.packetInfo = v
	return b
}

// MultiQueue selects the multi-queue variant for Open. The typed
// OpenMultiQueue* methods do not need it.
func (b *Builder) MultiQueue(v bool) *Builder {
	b.multiQueue = v
	return b
}

// Owner hands the interface to uid with TUNSETOWNER. Negative means unset.
func (b *Builder) Owner(uid int) *Builder {
	b.owner = uid
	return b
}

// Group hands the interface to gid with TUNSETGROUP. Negative means unset.
func (b *Builder) Group(gid int) *Builder {
	b.group = gid
	return b
}

func (b *Builder) params(m Mode, mq bool) openParams {
	flags := m.flag()
	if !b.packetInfo {
		flags |= FlagNoPacketInfo
	}
	if mq {
		flags |= FlagMultiQueue
	}
	p := openParams{name: b.name, flags: flags, persist: persistOff, owner: b.owner, group: b.group}
	if b.persist {
		p.persist = persistOn
	}
	return p
}

func (b *Builder) OpenTun() (*Tun, error) {
	h, err := b.sys.open(b.params(ModeTun, false))
	if err != nil {
		return nil, err
	}
	return &Tun{h}, nil
}

func (b *Builder) OpenTap() (*Tap, error) {
	h, err := b.sys.open(b.params(ModeTap, false))
	if err != nil {
		return nil, err
	}
	return &Tap{h}, nil
}

func (b *Builder) OpenMultiQueueTun() (*MultiQueueTun, error) {
	h, err := b.sys.open(b.params(ModeTun, true))
	if err != nil {
		return nil, err
	}
	return &MultiQueueTun{multiQueue{h}}, nil
}

func (b *Builder) OpenMultiQueueTap() (*MultiQueueTap, error) {
	h, err := b.sys.open(b.params(ModeTap, true))
	if err != nil {
		return nil, err
	}
	return &MultiQueueTap{multiQueue{h}}, nil
}

// Open opens the interface in mode m. The concrete type is *Tun, *Tap,
// *MultiQueueTun or *MultiQueueTap depending on m and the MultiQueue
// option. A Mode other than ModeTun or ModeTap is rejected before the
// clone device is opened.
func (b *Builder) Open(m Mode) (Device, error) {
	if m.flag() == 0 {
		return nil, fmt.Errorf("tuntap: unknown mode %v", m)
	}
	switch {
	case m == ModeTun && b.multiQueue:
		d, err := b.OpenMultiQueueTun()
		if err != nil {
			return nil, err
		}
		return d, nil
	case m == ModeTap && b.multiQueue:
		d, err := b.OpenMultiQueueTap()
		if err != nil {
			return nil, err
		}
		return d, nil
	case m == ModeTap:
		d, err := b.OpenTap()
		if err != nil {
			return nil, err
		}
		return d, nil
	default: // ModeTun
		d, err := b.OpenTun()
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
