package cmd

import (
	"context"
	"io"
	"log/slog"

	"fooddelivery/internal/adapters/in/cli"
	"fooddelivery/internal/core/application/delivery"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/logging"
)

// shellAgents are registered on the interactive shell's manager.
var shellAgents = []struct{ name, phone, vehicleNo string }{
	{"Mike", "0861234567", "D-123"},
	{"Sarah", "0869876543", "D-456"},
}

type CompositionRoot struct {
	config Config
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewCompositionRoot wires the application. Program output goes to out, logs to logs.
func NewCompositionRoot(config Config, in io.Reader, out, logs io.Writer) (CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return CompositionRoot{}, err
	}

	logger, err := logging.New(logs, config.LogLevel, config.LogFormat)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config: config,
		in:     in,
		out:    out,
		logger: logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateManager() (*delivery.Manager, error) {
	return delivery.NewManager(
		delivery.WithLogger(c.logger),
		delivery.WithOutput(c.out),
		delivery.WithFirstOrderID(c.config.FirstOrderID),
		delivery.WithCurrencySymbol(c.config.CurrencySymbol),
	)
}

func (c *CompositionRoot) CreateDemo() *cli.Demo {
	return cli.NewDemo(c.out, c.CreateManager, c.config.CurrencySymbol, c.logger)
}

func (c *CompositionRoot) CreateShell(ctx context.Context) (*cli.Shell, error) {
	manager, err := c.CreateManager()
	if err != nil {
		return nil, err
	}

	for _, a := range shellAgents {
		agent, err := user.NewDeliveryAgent(a.name, a.phone, a.vehicleNo)
		if err != nil {
			return nil, err
		}
		if err := manager.AddAgent(ctx, agent); err != nil {
			return nil, err
		}
	}

	return cli.NewShell(c.in, c.out, menu.NewDefaultMenu(), manager, c.config.CurrencySymbol, c.logger), nil
}

// Run starts the interactive shell when configured, the scripted demo otherwise.
func (c *CompositionRoot) Run(ctx context.Context) error {
	if !c.config.Interactive {
		return c.CreateDemo().Run(ctx)
	}

	shell, err := c.CreateShell(ctx)
	if err != nil {
		return err
	}
	return shell.Run(ctx)
}
