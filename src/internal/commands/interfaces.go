package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/babydepdev/otp-network-setting-go/src/internal/networking"
)

func CreateInterfacesCommand() *InterfacesCommand {
	gc := &InterfacesCommand{
		fs: flag.NewFlagSet("interfaces", flag.ExitOnError),
	}
	return gc
}

// InterfacesCommand lists the host's network links with their guessed kinds.
type InterfacesCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *InterfacesCommand) Run() error {
	interfaces, err := networking.GetInterfaceList()
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	fmt.Print(FormatInterfaces(interfaces))
	return nil
}

// FormatInterfaces renders the link list for the CLI.
func FormatInterfaces(interfaces []networking.Interface) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-16s %-10s %-6s %s\n", "NAME", "KIND", "STATE", "ADDRESSES"))

	for i := range interfaces {
		iface := &interfaces[i]

		kind := "-"
		if k, ok := iface.Kind(); ok {
			kind = string(k)
		}

		state := "down"
		if iface.IsUp() {
			state = "up"
		}

		addresses := ""
		if ips, err := iface.AddrsIps(); err == nil {
			var parts []string
			for _, ip := range ips {
				parts = append(parts, ip.String())
			}
			addresses = strings.Join(parts, ", ")
		}

		sb.WriteString(fmt.Sprintf("%-16s %-10s %-6s %s\n", iface.Attrs().Name, kind, state, addresses))
	}

	return sb.String()
}
