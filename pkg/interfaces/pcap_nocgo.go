//go:build !cgo
// +build !cgo

package interfaces

import "fmt"

func newPcap(name string) (Iface, error) {
	return nil, fmt.Errorf("pcap support requires cgo, use %s", AFPACKET)
}
