package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/terassyi/garp/cmd"
	"github.com/terassyi/garp/pkg/garp"
)

const program = "send-spoof-arp"

var open garp.Opener

// send-spoof-arp <interface> <source_ip> <source_mac>
func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := &cmd.SendCommand{Program: program, Out: out, Open: open}
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(out, "Usage: %s <interface> <source_ip> <source_mac>\n", program)
		return 1
	}
	return int(c.Execute(context.Background(), fs))
}
