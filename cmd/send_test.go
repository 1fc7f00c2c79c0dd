package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terassyi/garp/pkg/interfaces"
	"github.com/terassyi/garp/pkg/packet/arp"
)

type recorder struct {
	opened []string
	frames [][]byte
	err    error
}

type recordedIface struct {
	name string
	r    *recorder
}

func (i *recordedIface) Name() string { return i.name }

func (i *recordedIface) Send(b []byte) (int, error) {
	if i.r.err != nil {
		return 0, i.r.err
	}
	i.r.frames = append(i.r.frames, append([]byte(nil), b...))
	return len(b), nil
}

func (i *recordedIface) Close() error { return nil }

func (i *recordedIface) Address() (net.HardwareAddr, error) { return nil, nil }

func (r *recorder) open(name, typ string) (interfaces.Iface, error) {
	r.opened = append(r.opened, name)
	return &recordedIface{name: name, r: r}, nil
}

func run(t *testing.T, r *recorder, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	c := &SendCommand{Program: "send-spoof-arp", Out: &out, Open: r.open}
	f := flag.NewFlagSet("send", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f), out.String()
}

func TestSendArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"eth0"},
		{"eth0", "192.168.1.50"},
		{"eth0", "192.168.1.50", "aa:bb:cc:dd:ee:ff", "extra"},
	} {
		r := &recorder{}
		status, out := run(t, r, args...)
		assert.Equal(t, subcommands.ExitFailure, status, args)
		assert.Equal(t, "Usage: send-spoof-arp <interface> <source_ip> <source_mac>\n", out)
		assert.Empty(t, r.opened)
		assert.Empty(t, r.frames)
	}
}

func TestSendSuccess(t *testing.T) {
	r := &recorder{}
	status, out := run(t, r, "eth0", "192.168.1.50", "aa:bb:cc:dd:ee:ff")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, []string{"eth0"}, r.opened)
	require.Len(t, r.frames, 1)
	assert.Contains(t, out, "192.168.1.50")
	assert.Contains(t, out, "aa:bb:cc:dd:ee:ff")
	assert.Contains(t, out, "eth0")

	_, p, err := arp.Decode(r.frames[0])
	require.NoError(t, err)
	assert.Equal(t, arp.ARP_REPLY, p.OpCode)
	assert.True(t, p.IsGratuitous())
}

func TestSendFailureIsReported(t *testing.T) {
	r := &recorder{err: fmt.Errorf("no such device")}
	status, out := run(t, r, "eth0", "192.168.1.50", "aa:bb:cc:dd:ee:ff")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Error sending gratuitous ARP packet")
	assert.Contains(t, out, "no such device")
}

func TestSendOpenFailureIsReported(t *testing.T) {
	var out bytes.Buffer
	c := &SendCommand{Out: &out, Open: func(name, typ string) (interfaces.Iface, error) {
		return nil, fmt.Errorf("lookup interface %s: no such network interface", name)
	}}
	f := flag.NewFlagSet("send", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-via", "pcap", "nope0", "192.168.1.50", "aa:bb:cc:dd:ee:ff"}))
	assert.Equal(t, subcommands.ExitSuccess, c.Execute(context.Background(), f))
	assert.Equal(t, interfaces.PCAP, c.Via)
	assert.Contains(t, out.String(), "no such network interface")
}

func TestSendMalformedAddressIsReported(t *testing.T) {
	r := &recorder{}
	status, out := run(t, r, "eth0", "192.168.1.50", "not-a-mac")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Error sending gratuitous ARP packet")
	assert.Empty(t, r.opened)
}

func TestSendDryRun(t *testing.T) {
	r := &recorder{}
	status, out := run(t, r, "-dry-run", "eth0", "192.168.1.50", "aa:bb:cc:dd:ee:ff")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Empty(t, r.opened)
	assert.Contains(t, out, "(ARP)")
	assert.Contains(t, out, "(REPLY)")
	assert.Contains(t, out, "ff ff ff ff ff ff aa bb")
}
