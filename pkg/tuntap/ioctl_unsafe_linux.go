//go:build linux

package tuntap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// This file is the only place the package touches raw memory layout or
// issues ioctls on its own.

const (
	ifReqSize     = unsafe.Sizeof(unix.Ifreq{})
	sockFprogSize = unsafe.Sizeof(unix.SockFprog{})
)

// ifReq must match struct ifreq exactly.
var _ [unsafe.Sizeof(ifReq{}) - ifReqSize]struct{}
var _ [ifReqSize - unsafe.Sizeof(ifReq{})]struct{}

// ioctlIfReq issues cmd on fd with req as the argument.
//
// The caller guarantees that cmd takes a struct ifreq (TUNSETIFF,
// TUNSETQUEUE) and that req holds validated flags. req is ifReqSize bytes
// and stays reachable for the duration of the call. The kernel may write
// the resolved interface name back into it.
func ioctlIfReq(fd uintptr, cmd uint, req *ifReq) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(cmd), uintptr(unsafe.Pointer(req)))
	if errno != 0 {
		return errno
	}
	return nil
}

// raw aliases the memory of r as the kernel reads it.
func (r *ifReq) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r)), ifReqSize)
}
