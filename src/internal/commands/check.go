package commands

import (
	"flag"
	"fmt"

	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
	return gc
}

// CheckCommand runs semantic validation on a selections file without
// producing a document.
type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	inputPath string
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	g.fs.StringVar(&g.inputPath, "input", "", "Path to the selections JSON file ('-' = stdin)")

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.inputPath == "" {
		return fmt.Errorf("-input is required")
	}

	return nil
}

func (g *CheckCommand) Run() error {
	set, _, err := readSelections(g.inputPath)
	if err != nil {
		return err
	}

	if err := set.Validate(); err != nil {
		return err
	}

	log.Infof("Selection set is valid (%d enabled interface(s))", len(set.Enabled()))
	return nil
}
