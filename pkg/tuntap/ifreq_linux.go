//go:build linux

package tuntap

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// ifReq is the flags arm of struct ifreq: the name, ifr_flags in native
// byte order, then padding to the size of the whole union.
type ifReq struct {
	ifrName  [unix.IFNAMSIZ]byte
	ifrFlags uint16
	_        [ifReqSize - unix.IFNAMSIZ - 2]byte
}

// newIfReq builds a zeroed request. An empty name asks the kernel to pick one.
func newIfReq(name string, flags Flags) *ifReq {
	req := &ifReq{ifrFlags: uint16(flags)}
	copy(req.ifrName[:MaxNameLen], name)
	return req
}

// ifName returns the name up to the first NUL.
func (r *ifReq) ifName() string {
	n := bytes.IndexByte(r.ifrName[:], 0)
	if n < 0 {
		n = len(r.ifrName)
	}
	return string(r.ifrName[:n])
}

// marshal encodes r field by field. It matches raw byte for byte.
func (r *ifReq) marshal() []byte {
	b := make([]byte, ifReqSize)
	copy(b, r.ifrName[:])
	binary.NativeEndian.PutUint16(b[unix.IFNAMSIZ:], r.ifrFlags)
	return b
}
