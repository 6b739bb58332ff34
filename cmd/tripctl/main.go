package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"wanderly/internal/cli"
	"wanderly/internal/itinerary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fd := os.Stdout.Fd()
	app := &cli.App{
		Interpreter: itinerary.NewInterpreter(itinerary.WithIDGenerator(uuid.NewString)),
		Color:       os.Getenv("NO_COLOR") == "" && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}
	return cli.NewRootCmd(app).Execute()
}
