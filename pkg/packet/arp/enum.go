package arp

import "github.com/google/gopacket/layers"

type HardwareType = layers.LinkType
type ProtocolType = layers.EthernetType

const HARDWARE_ETHERNET HardwareType = layers.LinkTypeEthernet

const PROTOCOL_IPv4 ProtocolType = layers.EthernetTypeIPv4

type OperationCode uint16

const (
	ARP_REQUEST OperationCode = layers.ARPRequest
	ARP_REPLY   OperationCode = layers.ARPReply
)

func (op OperationCode) String() string {
	switch op {
	case ARP_REQUEST:
		return "(REQUEST)"
	case ARP_REPLY:
		return "(REPLY)"
	default:
		return "(UNKNOWN)"
	}
}
