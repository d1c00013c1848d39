package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/munch-accounts/internal/adapter"
	"github.com/MKhiriev/munch-accounts/internal/client"
	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewClientLogger("munch-accounts-cli")

	cfg, err := config.GetClientConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, client.Usage)
		return 2
	}

	accounts, err := adapter.NewHTTPAccountsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create adapter")
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	app := client.NewApp(accounts, os.Stdout, log)
	if err = app.Run(context.Background(), cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrWrongArgs) {
			fmt.Fprint(os.Stderr, client.Usage)
			return 2
		}
		return 1
	}

	return 0
}
