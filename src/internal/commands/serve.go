package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/babydepdev/otp-network-setting-go/src/internal/api"
	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
)

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	return gc
}

// ServeCommand runs the HTTP API under a restartable runner so a crashed or
// bind-failed listener is retried with backoff instead of killing the process.
type ServeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	listenAddr string
}

func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.StringVar(&c.listenAddr, "listen", "", "Address to bind the HTTP server (default: api_listen from config)")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	// Flag wins over config; config wins over the built-in default.
	if c.listenAddr == "" {
		if cfg.General != nil && cfg.General.APIListen != "" {
			c.listenAddr = cfg.General.APIListen
		} else {
			c.listenAddr = "127.0.0.1:8080"
		}
	}

	return nil
}

func (c *ServeCommand) Run() error {
	log.Infof("Starting otp-netsetting API server on %s", c.listenAddr)
	if c.cfg.General != nil && c.cfg.General.PrivateSubnetsOnly {
		log.Infof("Access restricted to private subnets and loopback callers")
	}

	runner := NewRestartableRunner(RunnerConfig{Name: "api-server"}, func(ctx context.Context) error {
		server := api.NewServer(api.ServerOptions{
			Config:     c.cfg,
			ListenAddr: c.listenAddr,
			Version:    c.ctx.Version,
		})

		serverErrors := make(chan error, 1)
		go func() {
			serverErrors <- server.Start()
		}()

		select {
		case err := <-serverErrors:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return server.Stop(shutdownCtx)
		}
	})

	if err := runner.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	sig := <-shutdown
	log.Infof("Received signal %v, shutting down server...", sig)

	if err := runner.Stop(); err != nil {
		return fmt.Errorf("failed to stop API server: %w", err)
	}

	log.Infof("Server stopped gracefully (restarts: %d)", runner.RestartCount())
	return nil
}
