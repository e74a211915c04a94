// Package main resolves holding history for addresses given on the command line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/bootstrap"
	"github.com/goodnatureofminers/hodlscope-backend/internal/clock"
	"github.com/goodnatureofminers/hodlscope-backend/internal/lookup"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/goodnatureofminers/hodlscope-backend/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Workers int              `long:"workers" env:"HOLDCHECK_WORKERS" description:"addresses resolved concurrently" default:"2"`
	Spacing time.Duration    `long:"spacing" env:"HOLDCHECK_SPACING" description:"pause before each lookup to spare public APIs" default:"250ms"`
	Verbose bool             `long:"verbose" short:"v" description:"log provider attempts"`
	Lookup  bootstrap.Config `group:"lookup"`
	Args    struct {
		Addresses []string `positional-arg-name:"address" required:"1"`
	} `positional-args:"yes"`
}

type line struct {
	Address       string    `json:"address"`
	AddressType   string    `json:"addressType,omitempty"`
	FirstReceive  string    `json:"firstReceive,omitempty"`
	Approximate   bool      `json:"firstReceiveApproximate,omitempty"`
	HoldDays      int64     `json:"holdDays"`
	EverSold      bool      `json:"everSold"`
	Balance       string    `json:"currentBalance,omitempty"`
	Rank          string    `json:"rank,omitempty"`
	HistorySource string    `json:"historySource,omitempty"`
	Error         string    `json:"error,omitempty"`
	ErrorKind     string    `json:"errorKind,omitempty"`
	ResolvedAt    time.Time `json:"resolvedAt"`
}

type resolver interface {
	Lookup(ctx context.Context, raw string) (*model.LookupResult, error)
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic("can't initialize zap logger: " + err.Error())
		}
	}
	defer func() {
		_ = logger.Sync()
	}()

	service, release, err := bootstrap.NewLookupService(cfg.Lookup, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer release()

	if err := run(ctx, service, cfg, clock.System{}, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, service resolver, cfg config, clk lookup.Clock, out io.Writer) error {
	lines, err := workerpool.Map(ctx, cfg.Workers, cfg.Args.Addresses, func(ctx context.Context, address string) (line, error) {
		if err := clock.SleepWithContext(ctx, cfg.Spacing); err != nil {
			return line{}, err
		}
		res, err := service.Lookup(ctx, address)
		return toLine(address, res, err, clk.Now()), nil
	})
	if err != nil {
		return fmt.Errorf("resolve addresses: %w", err)
	}

	enc := json.NewEncoder(out)
	for _, l := range lines {
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

func toLine(address string, res *model.LookupResult, err error, now time.Time) line {
	if err != nil {
		return line{
			Address:    address,
			Error:      err.Error(),
			ErrorKind:  string(lookup.KindOf(err)),
			ResolvedAt: now,
		}
	}
	return line{
		Address:       res.Address,
		AddressType:   res.AddressType,
		FirstReceive:  res.FirstReceive.Format(time.RFC3339),
		Approximate:   res.FirstReceiveApproximate,
		HoldDays:      res.HoldDays,
		EverSold:      res.EverSold,
		Balance:       res.CurrentBalance.String(),
		Rank:          string(res.Rank),
		HistorySource: res.Sources.History,
		ResolvedAt:    now,
	}
}
