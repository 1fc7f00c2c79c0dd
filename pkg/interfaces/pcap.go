//go:build cgo
// +build cgo

package interfaces

import (
	"net"
	"time"

	"github.com/google/gopacket/pcap"
	"github.com/pkg/errors"
)

const snaplen int32 = 65535

type pcapHandle struct {
	ifi    *net.Interface
	handle *pcap.Handle
}

func newPcap(name string) (Iface, error) {
	ifi, err := lookup(name)
	if err != nil {
		return nil, err
	}
	handle, err := pcap.OpenLive(ifi.Name, snaplen, false, time.Second)
	if err != nil {
		return nil, errors.Wrapf(err, "open pcap handle on %s", name)
	}
	return &pcapHandle{
		ifi:    ifi,
		handle: handle,
	}, nil
}

func (p *pcapHandle) Name() string {
	return p.ifi.Name
}

func (p *pcapHandle) Send(buf []byte) (int, error) {
	if err := p.handle.WritePacketData(buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

func (p *pcapHandle) Close() error {
	p.handle.Close()
	return nil
}

func (p *pcapHandle) Address() (net.HardwareAddr, error) {
	return p.ifi.HardwareAddr, nil
}
