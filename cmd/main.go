package main

import (
	"fmt"
	"os"

	"github.com/grapplelog/grapplelog-backend/internal/app"
	"github.com/grapplelog/grapplelog-backend/internal/platform/envutil"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	addr := ":" + envutil.Str("PORT", "8080")
	a.Log.Info("Starting server", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
