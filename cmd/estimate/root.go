package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

type options struct {
	json     bool
	ttl      time.Duration
	ttlSet   bool
	logLevel string
}

type useCaseBuilder func(opts *options) (ports.IEstimatorUseCase, error)

func newRootCmd(build useCaseBuilder) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "estimate [sizes...]",
		Short:        "Estimate the cost of uploading files to Arweave, in AR and SOL",
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.ttlSet = cmd.Flags().Changed("ttl")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(args)
			if err != nil {
				return err
			}
			uc, err := build(opts)
			if err != nil {
				return err
			}
			report, err := uc.Calculate(cmd.Context(), sizes)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), len(sizes), report)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")
	root.PersistentFlags().DurationVar(&opts.ttl, "ttl", 30*time.Second, "memo cache TTL for upstream calls")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newPricesCmd(build, opts), newStorageCostCmd(build, opts))
	return root
}

func newPricesCmd(build useCaseBuilder, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "Show AR and SOL prices in USD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := build(opts)
			if err != nil {
				return err
			}
			quote, err := uc.FetchTokenPrices(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]float64{"arweave": quote.ArweaveUSD, "solana": quote.SolanaUSD})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "AR:  $%s\nSOL: $%s\n",
				humanize.FormatFloat("#,###.####", quote.ArweaveUSD),
				humanize.FormatFloat("#,###.####", quote.SolanaUSD))
			return nil
		},
	}
}

func newStorageCostCmd(build useCaseBuilder, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "storage-cost <bytes>",
		Short: "Show the Arweave storage cost of N bytes in winston",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			totalBytes, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: totalBytes. Received: %s", domain.ErrInvalidArgument, args[0])
			}
			uc, err := build(opts)
			if err != nil {
				return err
			}
			cost, err := uc.FetchStorageCost(cmd.Context(), totalBytes)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]int64{"totalBytes": int64(totalBytes), "byteCost": cost})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s winston\n", humanize.IBytes(uint64(totalBytes)), humanize.Comma(cost))
			return nil
		},
	}
}

// parseSizes разбирает размеры файлов из аргументов. Остальную проверку делает юзкейс.
func parseSizes(args []string) ([]float64, error) {
	sizes := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, domain.ErrInvalidFileSizes
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReport(w io.Writer, files int, r *domain.CostReport) {
	fmt.Fprintf(w, "Files:      %d, %s (%s bytes)\n", files, humanize.IBytes(uint64(r.TotalBytes)), humanize.Comma(r.TotalBytes))
	fmt.Fprintf(w, "Byte cost:  %s winston\n", humanize.Comma(r.ByteCost))
	fmt.Fprintf(w, "Fee:        %s winston\n", humanize.Commaf(r.Fee))
	fmt.Fprintf(w, "Arweave:    %.12f AR\n", r.Arweave)
	fmt.Fprintf(w, "Solana:     %.12f SOL\n", r.Solana)
	fmt.Fprintf(w, "Rates:      AR $%s, SOL $%s, AR/SOL %.6f\n",
		humanize.FormatFloat("#,###.####", r.ArweavePrice),
		humanize.FormatFloat("#,###.####", r.SolanaPrice),
		r.ExchangeRate)
}
