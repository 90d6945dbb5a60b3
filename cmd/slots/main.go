package main

import (
	"casino_console/internal/app"
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"
)

var (
	Name = "slots"

	flagConfig   string
	flagEnv      string
	flagServe    bool
	flagSimulate int
)

func init() {
	flag.StringVar(&flagConfig, "config", "", "slot paytable yaml, eg: -config slot.yaml (default SLOT_CONFIG or built-in table)")
	flag.StringVar(&flagEnv, "env", ".env", "dotenv file")
	flag.BoolVar(&flagServe, "serve", false, "serve the HTTP API instead of the console game")
	flag.IntVar(&flagSimulate, "simulate", 0, "run N automated spins and print statistics")
}

func main() {
	flag.Parse()

	a := app.NewApp(app.Options{
		Name:           Name,
		EnvFile:        flagEnv,
		SlotConfigPath: flagConfig,
	})
	if err := a.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx := context.Background()
	var err error
	switch {
	case flagServe:
		err = a.Serve(ctx)
	case flagSimulate != 0:
		_, err = a.Simulate(ctx, flagSimulate, os.Stdout)
	default:
		err = a.Run(ctx, os.Stdin, os.Stdout)
	}
	if err != nil {
		a.ServiceProvider.Logger().Error("slots stopped", zap.Error(err))
		a.Close()
		os.Exit(1)
	}
}
