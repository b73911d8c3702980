package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
	"github.com/babydepdev/otp-network-setting-go/src/internal/netplan"
)

func CreateGenerateCommand() *GenerateCommand {
	gc := &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ExitOnError),
	}
	return gc
}

// GenerateCommand assembles the document from a selections file and writes
// the serialized artifact.
type GenerateCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	inputPath  string
	outputPath string
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	g.fs.StringVar(&g.inputPath, "input", "", "Path to the selections JSON file ('-' = stdin)")
	g.fs.StringVar(&g.outputPath, "output", "", "Artifact output path ('-' = stdout, default: artifact filename in CWD)")

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.inputPath == "" {
		return fmt.Errorf("-input is required")
	}

	if cfg, err := loadConfigOrDefault(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *GenerateCommand) Run() error {
	set, inputChecksum, err := readSelections(g.inputPath)
	if err != nil {
		return err
	}
	log.Debugf("Selections input checksum: %s", inputChecksum)

	doc, err := netplan.NewAssembler(g.cfg.Devices).Assemble(set)
	if err != nil {
		return err
	}

	banner := ""
	if g.cfg.General != nil {
		banner = g.cfg.General.Banner
	}
	serializer := netplan.NewSerializer(netplan.SerializerOptions{
		Filename:       g.cfg.OutputFilename(),
		BannerTemplate: banner,
		AppName:        "otp-netsetting",
		AppVersion:     g.ctx.Version.Version,
	})

	artifact, err := serializer.Artifact(doc)
	if err != nil {
		return err
	}

	if g.outputPath == "-" {
		if _, err := os.Stdout.Write(artifact.Bytes); err != nil {
			return fmt.Errorf("failed to write artifact to stdout: %v", err)
		}
		log.Debugf("Artifact checksum: %s", artifact.Checksum)
		return nil
	}

	outputPath := g.outputPath
	if outputPath == "" {
		outputPath = artifact.Filename
	}

	if err := os.WriteFile(outputPath, artifact.Bytes, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %v", err)
	}

	log.Infof("Wrote %s (%d bytes, md5 %s)", outputPath, len(artifact.Bytes), artifact.Checksum)
	return nil
}
