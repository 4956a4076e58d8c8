//go:build linux && (mips || mipsle || mips64 || mips64le || ppc64 || ppc64le)

package tuntap

// MIPS and PowerPC keep a 13-bit size field and a 3-bit direction field.
const (
	iocSizeBits = 13

	iocRead  = 2
	iocWrite = 4
)
