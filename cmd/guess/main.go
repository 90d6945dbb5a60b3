package main

import (
	"casino_console/internal/app"
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

var (
	Name = "guess"

	flagMode string
	flagMax  int
	flagEnv  string
)

func init() {
	flag.StringVar(&flagMode, "mode", app.GuessModePlayer, "who guesses: player or computer")
	flag.IntVar(&flagMax, "max", 10, "upper bound of the secret number, at least 1")
	flag.StringVar(&flagEnv, "env", ".env", "dotenv file")
}

func main() {
	flag.Parse()

	a := app.NewApp(app.Options{
		Name:    Name,
		EnvFile: flagEnv,
	})
	if err := a.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Guess(context.Background(), flagMode, flagMax, os.Stdin, os.Stdout); err != nil {
		a.ServiceProvider.Logger().Error("guess stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		a.Close()
		os.Exit(1)
	}
}
