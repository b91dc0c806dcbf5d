package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fooddelivery/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	interactive := flag.Bool("interactive", false, "run the interactive shell instead of the scripted demo")
	flag.Parse()

	config, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if *interactive {
		config.Interactive = true
	}

	app, err := cmd.NewCompositionRoot(config, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("Application stopped: %v", err)
	}
}
