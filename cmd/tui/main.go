package main

import (
	"context"
	"fmt"
	"os"

	"taskboard/client/tui"
	"taskboard/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	if err := tui.Run(context.Background(), cfg.Client.APIBaseURL); err != nil {
		fmt.Fprintln(os.Stderr, "TUI error:", err)
		os.Exit(1)
	}
}
