// Package garp builds gratuitous ARP replies and puts them on the wire.
//
// A gratuitous reply announces that ip is-at mac to every station on the
// segment. When mac does not belong to the sending host the announcement is
// a spoof: peers that accept it will redirect traffic for ip to mac. Only use
// it on networks you are authorized to modify.
package garp

import (
	"bytes"
	"context"
	"encoding/hex"
	"net"

	"github.com/pkg/errors"
	"github.com/terassyi/garp/logger"
	"github.com/terassyi/garp/pkg/interfaces"
	"github.com/terassyi/garp/pkg/packet/arp"
	"github.com/terassyi/garp/pkg/packet/ethernet"
)

type Frame struct {
	Ethernet *ethernet.EthernetFrame
	ARP      *arp.Packet
}

var lookupIP = net.DefaultResolver.LookupIP

// Build returns the broadcast frame announcing ip is-at mac. ip may be a
// literal address or a host name resolved to its first IPv4 address.
func Build(ctx context.Context, ip, mac string) (*Frame, error) {
	protoAddr, err := resolve(ctx, ip)
	if err != nil {
		return nil, err
	}
	hwAddr, err := net.ParseMAC(mac)
	if err != nil {
		return nil, errors.Wrap(err, "parse source mac")
	}
	p, err := arp.Gratuitous(hwAddr, protoAddr)
	if err != nil {
		return nil, err
	}
	return &Frame{
		Ethernet: ethernet.Build(hwAddr, ethernet.BroadcastAddress, ethernet.ETHER_TYPE_ARP, p.Layer()),
		ARP:      p,
	}, nil
}

func resolve(ctx context.Context, host string) (net.IP, error) {
	if addr := net.ParseIP(host); addr != nil {
		return addr, nil
	}
	if host == "" {
		return nil, errors.New("parse source ip: empty address")
	}
	addrs, err := lookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve source ip %q", host)
	}
	if len(addrs) == 0 {
		return nil, errors.Errorf("resolve source ip %q: no ipv4 address", host)
	}
	return addrs[0], nil
}

func (f *Frame) Serialize() ([]byte, error) {
	return f.Ethernet.Serialize()
}

type Opener func(name, typ string) (interfaces.Iface, error)

type Sender struct {
	Kind   string
	Open   Opener
	Logger *logger.Logger
}

func NewSender(kind string, debug bool) *Sender {
	return &Sender{
		Kind:   kind,
		Open:   interfaces.New,
		Logger: logger.New(debug, "garp"),
	}
}

type Result struct {
	Iface string
	IP    string
	MAC   string
	Bytes int
}

// Send builds one announcement and transmits it once on iface.
func (s *Sender) Send(ctx context.Context, iface, ip, mac string) (*Result, error) {
	frame, err := Build(ctx, ip, mac)
	if err != nil {
		return nil, err
	}
	data, err := frame.Serialize()
	if err != nil {
		return nil, err
	}
	log := s.logger().WithField("iface", iface)
	if log.DebugMode() {
		log.Debugf("frame:\n%s", hex.Dump(data))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	open := s.Open
	if open == nil {
		open = interfaces.New
	}
	kind := s.Kind
	if kind == "" {
		kind = interfaces.AFPACKET
	}
	dev, err := open(iface, kind)
	if err != nil {
		return nil, errors.Wrapf(err, "open interface %s", iface)
	}
	defer dev.Close()
	log.Debugf("opened %s transmitter", kind)
	if hw, err := dev.Address(); err == nil && !bytes.Equal(hw, frame.ARP.SourceHardwareAddress) {
		log.Debugf("announcing %s, interface address is %s", frame.ARP.SourceHardwareAddress, hw)
	}

	n, err := dev.Send(data)
	if err != nil {
		return nil, errors.Wrap(err, "write frame")
	}
	log.Debugf("wrote %d bytes", n)
	return &Result{
		Iface: iface,
		IP:    ip,
		MAC:   mac,
		Bytes: n,
	}, nil
}

func (s *Sender) logger() *logger.Logger {
	if s.Logger == nil {
		return logger.New(false, "garp")
	}
	return s.Logger
}
