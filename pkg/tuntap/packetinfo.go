package tuntap

import "encoding/binary"

// PacketInfoLen is the size of the header carried by each frame when a
// device is opened with packet info.
const PacketInfoLen = 4

// PacketInfoStrip is set by the kernel when the frame did not fit the
// read buffer and was truncated.
const PacketInfoStrip = 0x0001

// PacketInfo mirrors struct tun_pi. Flags are host byte order; Proto is an
// EtherType and travels big-endian.
type PacketInfo struct {
	Flags uint16
	Proto uint16
}

// EncodePacketInfo writes pi to the start of dst and returns the number of
// bytes written. dst must hold at least PacketInfoLen bytes.
func EncodePacketInfo(pi PacketInfo, dst []byte) int {
	binary.NativeEndian.PutUint16(dst[0:2], pi.Flags)
	binary.BigEndian.PutUint16(dst[2:4], pi.Proto)
	return PacketInfoLen
}

// DecodePacketInfo reads a header at b[*i:] and advances *i past it, so
// b[*i:] is the frame that followed.
func DecodePacketInfo(b []byte, i *int) (PacketInfo, bool) {
	if len(b)-*i < PacketInfoLen {
		return PacketInfo{}, false
	}
	pi := PacketInfo{
		Flags: binary.NativeEndian.Uint16(b[*i : *i+2]),
		Proto: binary.BigEndian.Uint16(b[*i+2 : *i+4]),
	}
	*i += PacketInfoLen
	return pi, true
}
