//go:build !linux
// +build !linux

package interfaces

import (
	"fmt"
	"runtime"
)

func newAfPacket(name string) (Iface, error) {
	return nil, fmt.Errorf("afpacket is not supported on %s, use %s", runtime.GOOS, PCAP)
}
