package cmd

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/terassyi/garp/pkg/garp"
	"github.com/terassyi/garp/pkg/interfaces"
)

type SendCommand struct {
	Via    string
	Debug  bool
	DryRun bool

	// Program names the binary in the usage line.
	Program string
	Out     io.Writer
	Open    garp.Opener
}

func (s *SendCommand) Name() string {
	return "send"
}

func (s *SendCommand) Synopsis() string {
	return "send one gratuitous arp reply announcing ip is-at mac"
}

func (s *SendCommand) Usage() string {
	return `garp send [-via afpacket|pcap] [-debug] [-dry-run] <interface> <source_ip> <source_mac>:
	broadcast a single arp reply claiming <source_ip> is-at <source_mac> on <interface>
`
}

func (s *SendCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.Via, "via", interfaces.AFPACKET, "transmitter: afpacket or pcap")
	f.BoolVar(&s.Debug, "debug", false, "debug logging")
	f.BoolVar(&s.DryRun, "dry-run", false, "print the frame instead of sending it")
}

func (s *SendCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := s.out()
	if f.NArg() != 3 {
		fmt.Fprintf(out, "Usage: %s <interface> <source_ip> <source_mac>\n", s.program())
		return subcommands.ExitFailure
	}
	iface, ip, mac := f.Arg(0), f.Arg(1), f.Arg(2)

	if s.DryRun {
		if err := s.show(ctx, out, ip, mac); err != nil {
			fmt.Fprintf(out, "Error building gratuitous ARP packet: %v\n", err)
		}
		return subcommands.ExitSuccess
	}

	sender := garp.NewSender(s.Via, s.Debug)
	if s.Open != nil {
		sender.Open = s.Open
	}
	res, err := sender.Send(ctx, iface, ip, mac)
	if err != nil {
		fmt.Fprintf(out, "Error sending gratuitous ARP packet: %v\n", err)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(out, "Sent spoofed gratuitous ARP reply from %s (%s) via interface %s\n", res.IP, res.MAC, res.Iface)
	return subcommands.ExitSuccess
}

func (s *SendCommand) show(ctx context.Context, out io.Writer, ip, mac string) error {
	frame, err := garp.Build(ctx, ip, mac)
	if err != nil {
		return err
	}
	data, err := frame.Serialize()
	if err != nil {
		return err
	}
	frame.Ethernet.Header.Show(out)
	frame.ARP.Show(out)
	fmt.Fprint(out, hex.Dump(data))
	return nil
}

func (s *SendCommand) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *SendCommand) program() string {
	if s.Program == "" {
		return "garp send"
	}
	return s.Program
}
