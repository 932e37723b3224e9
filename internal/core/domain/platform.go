package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// OSFamily is the closed set of host operating systems.
type OSFamily int

const (
	// OSUnknown is any operating system without toolchain support.
	OSUnknown OSFamily = iota
	// Linux is any Linux distribution.
	Linux
	// MacOS is Apple macOS.
	MacOS
	// Windows is Microsoft Windows.
	Windows
)

// String returns the canonical lowercase name of the OS family.
func (o OSFamily) String() string {
	switch o {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	case OSUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Arch is the closed set of host CPU architectures.
type Arch int

const (
	// ArchUnknown is any architecture without toolchain support.
	ArchUnknown Arch = iota
	// X8664 is 64-bit x86.
	X8664
	// Aarch64 is 64-bit ARM.
	Aarch64
)

// String returns the release spelling of the architecture.
func (a Arch) String() string {
	switch a {
	case X8664:
		return "x86_64"
	case Aarch64:
		return "aarch64"
	case ArchUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ParseOS maps a GOOS value or an OS family name to an OSFamily.
func ParseOS(s string) OSFamily {
	switch s {
	case "linux":
		return Linux
	case "darwin", "macos", "mac":
		return MacOS
	case "windows":
		return Windows
	default:
		return OSUnknown
	}
}

// ParseArch maps a GOARCH value or a release architecture name to an Arch.
func ParseArch(s string) Arch {
	switch s {
	case "amd64", "x86_64":
		return X8664
	case "arm64", "aarch64":
		return Aarch64
	default:
		return ArchUnknown
	}
}

// Platform is a host operating system and architecture pair.
type Platform struct {
	OS   OSFamily
	Arch Arch
}

// String returns the platform as os/arch.
func (p Platform) String() string {
	return p.OS.String() + "/" + p.Arch.String()
}

// BinaryName returns the on-disk file name of an executable on the given OS.
// Windows executables carry an .exe suffix; other systems use the bare name.
func BinaryName(os OSFamily, base string) string {
	if os == Windows {
		return base + ".exe"
	}
	return base
}

// AssetName returns the release asset name for a binary on the given platform,
// formatted as <base>-<arch>-<os-triple><ext>.
func AssetName(os OSFamily, arch Arch, base string) (string, error) {
	var archPart string
	switch arch {
	case X8664:
		archPart = "x86_64"
	case Aarch64:
		archPart = "aarch64"
	case ArchUnknown:
		return "", unsupported(os, arch)
	default:
		return "", unsupported(os, arch)
	}

	var osPart, ext string
	switch os {
	case MacOS:
		osPart = "apple-darwin"
	case Linux:
		osPart = "unknown-linux-gnu"
	case Windows:
		osPart = "pc-windows-msvc"
		ext = ".exe"
	case OSUnknown:
		return "", unsupported(os, arch)
	default:
		return "", unsupported(os, arch)
	}

	return fmt.Sprintf("%s-%s-%s%s", base, archPart, osPart, ext), nil
}

func unsupported(os OSFamily, arch Arch) error {
	p := Platform{OS: os, Arch: arch}.String()
	return zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "no release asset for "+p), "platform", p)
}
