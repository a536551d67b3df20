// Command todo runs the todo list API and its maintenance tasks.
package main

import (
	"log/slog"
	"os"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}
