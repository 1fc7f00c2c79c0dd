package arp

import (
	"fmt"
	"io"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
	"github.com/terassyi/garp/pkg/packet/ethernet"
)

type Packet struct {
	OpCode                OperationCode
	SourceHardwareAddress net.HardwareAddr
	SourceProtocolAddress net.IP
	TargetHardwareAddress net.HardwareAddr
	TargetProtocolAddress net.IP
}

func (arp *Packet) Show(w io.Writer) {
	fmt.Fprintln(w, "---------------arp---------------")
	fmt.Fprintf(w, "hardware type = %02x\n", uint16(HARDWARE_ETHERNET))
	fmt.Fprintf(w, "protocol type = %04x\n", uint16(PROTOCOL_IPv4))
	fmt.Fprintf(w, "operation code = %s\n", arp.OpCode.String())
	fmt.Fprintf(w, "src hwaddr = %s\n", arp.SourceHardwareAddress)
	fmt.Fprintf(w, "src protoaddr = %s\n", arp.SourceProtocolAddress)
	fmt.Fprintf(w, "target hwaddr = %s\n", arp.TargetHardwareAddress)
	fmt.Fprintf(w, "target protoaddr = %s\n", arp.TargetProtocolAddress)
}

// IsGratuitous reports whether the packet announces its own sender address.
func (arp *Packet) IsGratuitous() bool {
	return arp.SourceProtocolAddress.Equal(arp.TargetProtocolAddress)
}

// Layer converts the packet into a gopacket layer ready for serialization.
func (arp *Packet) Layer() *layers.ARP {
	return &layers.ARP{
		AddrType:          HARDWARE_ETHERNET,
		Protocol:          PROTOCOL_IPv4,
		HwAddressSize:     uint8(len(arp.SourceHardwareAddress)),
		ProtAddressSize:   uint8(len(arp.SourceProtocolAddress)),
		Operation:         uint16(arp.OpCode),
		SourceHwAddress:   []byte(arp.SourceHardwareAddress),
		SourceProtAddress: []byte(arp.SourceProtocolAddress),
		DstHwAddress:      []byte(arp.TargetHardwareAddress),
		DstProtAddress:    []byte(arp.TargetProtocolAddress),
	}
}

func New(l *layers.ARP) (*Packet, error) {
	if l.AddrType != HARDWARE_ETHERNET || l.Protocol != PROTOCOL_IPv4 {
		return nil, fmt.Errorf("unsupported arp address types %s/%s", l.AddrType, l.Protocol)
	}
	return &Packet{
		OpCode:                OperationCode(l.Operation),
		SourceHardwareAddress: net.HardwareAddr(l.SourceHwAddress),
		SourceProtocolAddress: net.IP(l.SourceProtAddress),
		TargetHardwareAddress: net.HardwareAddr(l.DstHwAddress),
		TargetProtocolAddress: net.IP(l.DstProtAddress),
	}, nil
}

// Decode parses a serialized Ethernet frame carrying an ARP message.
func Decode(frame []byte) (*ethernet.EthernetHeader, *Packet, error) {
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	if errLayer := pkt.ErrorLayer(); errLayer != nil {
		return nil, nil, errors.Wrap(errLayer.Error(), "decode frame")
	}
	ethLayer := pkt.Layer(layers.LayerTypeEthernet)
	arpLayer := pkt.Layer(layers.LayerTypeARP)
	if ethLayer == nil || arpLayer == nil {
		return nil, nil, fmt.Errorf("frame does not carry an arp message")
	}
	eth := ethLayer.(*layers.Ethernet)
	p, err := New(arpLayer.(*layers.ARP))
	if err != nil {
		return nil, nil, err
	}
	return &ethernet.EthernetHeader{
		Dst:  eth.DstMAC,
		Src:  eth.SrcMAC,
		Type: eth.EthernetType,
	}, p, nil
}

func Request(srcHardwareAddress net.HardwareAddr, srcProtocolAddress, targetProtocolAddress net.IP) (*Packet, error) {
	spa, tpa, err := ipv4Pair(srcProtocolAddress, targetProtocolAddress)
	if err != nil {
		return nil, err
	}
	if len(srcHardwareAddress) != 6 {
		return nil, fmt.Errorf("invalid hardware address %s", srcHardwareAddress)
	}
	return &Packet{
		OpCode:                ARP_REQUEST,
		SourceHardwareAddress: srcHardwareAddress,
		SourceProtocolAddress: spa,
		TargetHardwareAddress: ethernet.BroadcastAddress,
		TargetProtocolAddress: tpa,
	}, nil
}

func Reply(srcHardwareAddress net.HardwareAddr, srcProtocolAddress net.IP, targetHardwareAddress net.HardwareAddr, targetProtocolAddress net.IP) (*Packet, error) {
	spa, tpa, err := ipv4Pair(srcProtocolAddress, targetProtocolAddress)
	if err != nil {
		return nil, err
	}
	if len(srcHardwareAddress) != 6 || len(targetHardwareAddress) != 6 {
		return nil, fmt.Errorf("invalid hardware address %s/%s", srcHardwareAddress, targetHardwareAddress)
	}
	return &Packet{
		OpCode:                ARP_REPLY,
		SourceHardwareAddress: srcHardwareAddress,
		SourceProtocolAddress: spa,
		TargetHardwareAddress: targetHardwareAddress,
		TargetProtocolAddress: tpa,
	}, nil
}

// Gratuitous builds an unsolicited "is-at" reply: the sender and target
// protocol addresses are both ip, the target hardware address is broadcast.
func Gratuitous(hwaddr net.HardwareAddr, ip net.IP) (*Packet, error) {
	return Reply(hwaddr, ip, ethernet.BroadcastAddress, ip)
}

func ipv4Pair(a, b net.IP) (net.IP, net.IP, error) {
	a4, b4 := a.To4(), b.To4()
	if a4 == nil || b4 == nil {
		return nil, nil, fmt.Errorf("only ipv4 protocol addresses are supported: %v, %v", a, b)
	}
	return a4, b4, nil
}
