package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fjacquet/activity-export/cmd/accounts"
	"fjacquet/activity-export/cmd/export"
	"fjacquet/activity-export/cmd/normalize"
	"fjacquet/activity-export/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(normalize.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
