package main

import (
	"fmt"
	"os"

	"arweaveCost/internal/app"
	"arweaveCost/internal/infrastructure/arweave"
	"arweaveCost/internal/infrastructure/coingecko"
	"arweaveCost/internal/pkg/logger"
	"arweaveCost/internal/pkg/memo"
	"arweaveCost/internal/ports"
	"arweaveCost/internal/usecase/estimator"
)

var version = "dev"

func main() {
	if err := newRootCmd(buildUseCase).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildUseCase собирает юзкейс без журнала и брокера: CLI только считает.
func buildUseCase(opts *options) (ports.IEstimatorUseCase, error) {
	cfg, err := app.LoadCfg()
	if err != nil {
		return nil, err
	}
	if opts.ttlSet {
		cfg.Cache.TTL = opts.ttl
	}
	log := logger.NewWithLevel(opts.logLevel)
	cache := memo.New(cfg.Cache, memo.WithLogger(log))
	return estimator.New(
		coingecko.New(&cfg.Coingecko, log),
		arweave.New(&cfg.Arweave, log),
		cache, nil, nil, nil, log,
	), nil
}
