package ethernet

import (
	"net"

	"github.com/google/gopacket/layers"
)

type EtherType = layers.EthernetType

const (
	ETHER_TYPE_IP   EtherType = layers.EthernetTypeIPv4
	ETHER_TYPE_ARP  EtherType = layers.EthernetTypeARP
	ETHER_TYPE_IPV6 EtherType = layers.EthernetTypeIPv6
)

// MinFrameSize is the smallest frame put on the wire, without FCS.
const MinFrameSize int = 60

var BroadcastAddress = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
