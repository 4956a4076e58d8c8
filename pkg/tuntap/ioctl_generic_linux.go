//go:build linux && (386 || amd64 || arm || arm64 || loong64 || riscv64 || s390x)

package tuntap

// asm-generic/ioctl.h layout.
const (
	iocSizeBits = 14

	iocWrite = 1
	iocRead  = 2
)
