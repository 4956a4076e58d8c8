//go:build linux

package tuntap

import (
	"encoding/hex"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"tuntap-go/pkg/logx"
)

// DevicePath is the clone device every interface is opened through.
const DevicePath = "/dev/net/tun"

// opener runs the open protocol. Its syscalls are fields so the protocol
// can be driven without /dev/net/tun.
//
// The descriptor stays raw until TUNSETIFF has attached it to an
// interface. Before that the tun driver reports EPOLLERR without arming a
// wait queue, so a descriptor registered with the runtime poller any
// earlier never sees another read wakeup.
type opener struct {
	path      string
	cmds      Commands
	openFd    func(path string) (int, error)
	closeFd   func(fd int) error
	wrap      func(fd int, name string) (*os.File, error)
	ifReq     func(fd uintptr, cmd uint, req *ifReq) error
	setInt    func(fd uintptr, cmd uint, v int) error
	getUint32 func(fd uintptr, cmd uint) (uint32, error)
}

var kernel = &opener{
	path: DevicePath,
	cmds: IoctlCommands(),
	openFd: func(path string) (int, error) {
		fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
		if err != nil {
			return -1, &os.PathError{Op: "open", Path: path, Err: err}
		}
		return fd, nil
	},
	closeFd: unix.Close,
	wrap:    wrapFd,
	ifReq:   ioctlIfReq,
	setInt: func(fd uintptr, cmd uint, v int) error {
		return unix.IoctlSetInt(int(fd), cmd, v)
	},
	getUint32: func(fd uintptr, cmd uint) (uint32, error) {
		return unix.IoctlGetUint32(int(fd), cmd)
	},
}

// wrapFd hands an attached descriptor to the runtime poller. os.NewFile
// only makes the file pollable when the descriptor is already
// non-blocking.
func wrapFd(fd int, name string) (*os.File, error) {
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, os.NewSyscallError("fcntl", err)
	}
	return os.NewFile(uintptr(fd), name), nil
}

// control runs fn against the descriptor of f without taking it out of
// the runtime poller, as f.Fd would.
func control(f *os.File, fn func(fd uintptr) error) error {
	rc, err := f.SyscallConn()
	if err != nil {
		return err
	}
	var opErr error
	if err := rc.Control(func(fd uintptr) { opErr = fn(fd) }); err != nil {
		return err
	}
	return opErr
}

func (o *opener) open(p openParams) (handle, error) {
	fd, err := o.openFd(o.path)
	if err != nil {
		logx.Printf(1, "open %s: %v", o.path, err)
		return handle{}, err
	}

	req := newIfReq(p.name, p.flags)
	logx.Fields(2, "TUNSETIFF", logrus.Fields{
		"name":  p.name,
		"flags": p.flags,
		"ifreq": hex.EncodeToString(req.marshal()),
	})
	if err := o.configure(uintptr(fd), req, p); err != nil {
		o.closeFd(fd)
		logx.Printf(1, "open %q (%v): %v", p.name, p.flags, err)
		return handle{}, err
	}

	f, err := o.wrap(fd, o.path)
	if err != nil {
		o.closeFd(fd)
		return handle{}, err
	}

	name := req.ifName()
	logx.Fields(1, "opened", logrus.Fields{"name": name, "flags": p.flags, "persist": p.persist == persistOn})
	return handle{file: f, name: name, flags: p.flags, sys: o}, nil
}

// configure issues the ioctl sequence on a raw, not yet attached fd.
func (o *opener) configure(fd uintptr, req *ifReq, p openParams) error {
	if err := o.ifReq(fd, o.cmds.SetIFF, req); err != nil {
		return os.NewSyscallError("TUNSETIFF", err)
	}
	if p.persist != persistKeep {
		if err := o.setInt(fd, o.cmds.SetPersist, boolInt(p.persist == persistOn)); err != nil {
			return os.NewSyscallError("TUNSETPERSIST", err)
		}
	}
	if p.owner >= 0 {
		if err := o.setInt(fd, o.cmds.SetOwner, p.owner); err != nil {
			return os.NewSyscallError("TUNSETOWNER", err)
		}
	}
	if p.group >= 0 {
		if err := o.setInt(fd, o.cmds.SetGroup, p.group); err != nil {
			return os.NewSyscallError("TUNSETGROUP", err)
		}
	}
	return nil
}

func (o *opener) features() (Flags, error) {
	fd, err := o.openFd(o.path)
	if err != nil {
		return 0, err
	}
	defer o.closeFd(fd)

	v, err := o.getUint32(uintptr(fd), o.cmds.GetFeatures)
	if err != nil {
		return 0, os.NewSyscallError("TUNGETFEATURES", err)
	}
	return Flags(v), nil
}

func (o *opener) setQueue(h *handle, attach bool) error {
	flags := flagDetachQueue
	if attach {
		flags = flagAttachQueue
	}
	req := newIfReq("", flags)
	logx.Fields(2, "TUNSETQUEUE", logrus.Fields{"name": h.name, "flags": flags})
	return control(h.file, func(fd uintptr) error {
		if err := o.ifReq(fd, o.cmds.SetQueue, req); err != nil {
			return os.NewSyscallError("TUNSETQUEUE", err)
		}
		return nil
	})
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
