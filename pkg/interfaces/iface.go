package interfaces

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

const (
	AFPACKET string = "afpacket"
	PCAP     string = "pcap"
)

// Iface is a link-layer transmitter bound to one network interface.
type Iface interface {
	Name() string
	Send([]byte) (int, error)
	Close() error
	Address() (net.HardwareAddr, error)
}

func New(name, typ string) (Iface, error) {
	switch typ {
	case AFPACKET:
		return newAfPacket(name)
	case PCAP:
		return newPcap(name)
	default:
		return nil, fmt.Errorf("invalid type %q", typ)
	}
}

func lookup(name string) (*net.Interface, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup interface %s", name)
	}
	return ifi, nil
}
