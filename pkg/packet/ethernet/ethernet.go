package ethernet

import (
	"bytes"
	"fmt"
	"io"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
)

type EthernetHeader struct {
	Dst  net.HardwareAddr
	Src  net.HardwareAddr
	Type EtherType
}

type EthernetFrame struct {
	Header EthernetHeader
	Data   gopacket.SerializableLayer
}

func (ethhdr EthernetHeader) Show(w io.Writer) {
	fmt.Fprintln(w, "----------ethernet header----------")
	fmt.Fprintf(w, "dst = %s\n", ethhdr.Dst)
	fmt.Fprintf(w, "src = %s\n", ethhdr.Src)
	fmt.Fprintf(w, "type = 0x%04x", uint16(ethhdr.Type))
	switch ethhdr.Type {
	case ETHER_TYPE_ARP:
		fmt.Fprintf(w, "(ARP)\n")
	case ETHER_TYPE_IP:
		fmt.Fprintf(w, "(IP)\n")
	case ETHER_TYPE_IPV6:
		fmt.Fprintf(w, "(IPV6)\n")
	default:
		fmt.Fprintf(w, "(UNKNOWN)\n")
	}
	fmt.Fprintln(w, "----------------------------------")
}

// IsBroadcast reports whether the frame is addressed to every station on the segment.
func (ethhdr EthernetHeader) IsBroadcast() bool {
	return bytes.Equal(ethhdr.Dst, BroadcastAddress)
}

// Serialize encodes the header and payload layer, padding up to MinFrameSize.
func (eth *EthernetFrame) Serialize() ([]byte, error) {
	if eth.Data == nil {
		return nil, fmt.Errorf("frame has no payload")
	}
	hdr := &layers.Ethernet{
		DstMAC:       eth.Header.Dst,
		SrcMAC:       eth.Header.Src,
		EthernetType: eth.Header.Type,
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, hdr, eth.Data); err != nil {
		return nil, errors.Wrap(err, "serialize ethernet frame")
	}
	return buf.Bytes(), nil
}

func Build(src, dst net.HardwareAddr, typ EtherType, data gopacket.SerializableLayer) *EthernetFrame {
	header := EthernetHeader{
		Src:  src,
		Dst:  dst,
		Type: typ,
	}
	return &EthernetFrame{
		Header: header,
		Data:   data,
	}
}
