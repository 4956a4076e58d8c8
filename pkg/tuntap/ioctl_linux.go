//go:build linux

package tuntap

// Command numbers are built with the kernel's _IOC rule:
//
//	dir<<dirShift | size<<sizeShift | type<<typeShift | nr
//
// The widths of the dir and size fields, and the values of the direction
// bits, differ between architectures. They come from the per-architecture
// ioctl_*_linux.go files. A GOARCH with no such file does not compile.
const (
	iocNrBits   = 8
	iocTypeBits = 8

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	tunIoctlType = 'T'
	sizeofInt    = 4
)

func ioc(dir, typ, nr, size uintptr) uint {
	return uint(dir<<iocDirShift | size<<iocSizeShift | typ<<iocTypeShift | nr<<iocNrShift)
}

func iow(nr, size uintptr) uint { return ioc(iocWrite, tunIoctlType, nr, size) }
func ior(nr, size uintptr) uint { return ioc(iocRead, tunIoctlType, nr, size) }

// Commands are the TUN ioctl request numbers from linux/if_tun.h for the
// architecture the package was compiled for.
type Commands struct {
	SetNoCsum    uint
	SetDebug     uint
	SetIFF       uint
	SetPersist   uint
	SetOwner     uint
	SetLink      uint
	SetGroup     uint
	GetFeatures  uint
	SetOffload   uint
	SetTxFilter  uint
	GetIFF       uint
	GetSndBuf    uint
	SetSndBuf    uint
	AttachFilter uint
	DetachFilter uint
	GetVnetHdrSz uint
	SetVnetHdrSz uint
	SetQueue     uint
	SetIfIndex   uint
	GetFilter    uint
}

// IoctlCommands computes the command table for this architecture.
func IoctlCommands() Commands {
	return Commands{
		SetNoCsum:    iow(200, sizeofInt),
		SetDebug:     iow(201, sizeofInt),
		SetIFF:       iow(202, sizeofInt),
		SetPersist:   iow(203, sizeofInt),
		SetOwner:     iow(204, sizeofInt),
		SetLink:      iow(205, sizeofInt),
		SetGroup:     iow(206, sizeofInt),
		GetFeatures:  ior(207, sizeofInt),
		SetOffload:   iow(208, sizeofInt),
		SetTxFilter:  iow(209, sizeofInt),
		GetIFF:       ior(210, sizeofInt),
		GetSndBuf:    ior(211, sizeofInt),
		SetSndBuf:    iow(212, sizeofInt),
		AttachFilter: iow(213, sockFprogSize),
		DetachFilter: iow(214, sockFprogSize),
		GetVnetHdrSz: ior(215, sizeofInt),
		SetVnetHdrSz: iow(216, sizeofInt),
		SetQueue:     iow(217, sizeofInt),
		SetIfIndex:   iow(218, sizeofInt),
		GetFilter:    ior(219, sockFprogSize),
	}
}
