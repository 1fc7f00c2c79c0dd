package interfaces

import (
	"net"

	"github.com/mdlayher/packet"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type afPacket struct {
	ifi  *net.Interface
	conn *packet.Conn
}

func newAfPacket(name string) (Iface, error) {
	ifi, err := lookup(name)
	if err != nil {
		return nil, err
	}
	conn, err := packet.Listen(ifi, packet.Raw, unix.ETH_P_ARP, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open packet socket on %s", name)
	}
	return &afPacket{
		ifi:  ifi,
		conn: conn,
	}, nil
}

func (af *afPacket) Name() string {
	return af.ifi.Name
}

// Send writes a complete Ethernet frame. The destination is read from the frame itself.
func (af *afPacket) Send(buf []byte) (int, error) {
	if len(buf) < 6 {
		return 0, errors.New("frame is too short")
	}
	addr := &packet.Addr{HardwareAddr: net.HardwareAddr(buf[:6])}
	return af.conn.WriteTo(buf, addr)
}

func (af *afPacket) Close() error {
	return af.conn.Close()
}

func (af *afPacket) Address() (net.HardwareAddr, error) {
	return af.ifi.HardwareAddr, nil
}
