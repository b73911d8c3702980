package commands

import (
	"flag"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
)

func CreateUpgradeConfigCommand() *UpgradeConfigCommand {
	gc := &UpgradeConfigCommand{
		fs: flag.NewFlagSet("upgrade-config", flag.ExitOnError),
	}
	return gc
}

// UpgradeConfigCommand migrates the configuration file to the current
// format version and rewrites it in place.
type UpgradeConfigCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *UpgradeConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *UpgradeConfigCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	// Upgrading requires an actual file; defaults have nothing to migrate.
	if cfg, err := config.LoadConfig(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *UpgradeConfigCommand) Run() error {
	upgraded, err := g.cfg.UpgradeConfig()
	if err != nil {
		return err
	}

	if !upgraded {
		log.Infof("Configuration is already at version %s", config.CurrentConfigVersion)
		return nil
	}

	if err := g.cfg.WriteConfig(); err != nil {
		return err
	}

	log.Infof("Configuration upgraded to version %s", config.CurrentConfigVersion)
	return nil
}
