package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libshares/document"
	"github.com/sgostarter/libshares/lagrange/approx"
	"github.com/sgostarter/libshares/recoverer"
	"github.com/sgostarter/libshares/result"
	"github.com/sgostarter/libshares/result/impls/fmstorage"
	"github.com/sgostarter/libshares/result/impls/redisimpls"
	"github.com/sgostarter/libshares/share"
)

type shareFlags []string

func (s *shareFlags) String() string {
	return strings.Join(*s, ",")
}

func (s *shareFlags) Set(v string) error {
	*s = append(*s, v)

	return nil
}

func main() {
	var shares shareFlags

	configFile := flag.String("config", "", "YAML config file")
	k := flag.Int("k", 0, "threshold, overrides the documents")
	dataRoot := flag.String("data", "", "directory results are saved to")
	redisDSN := flag.String("redis", "", "redis DSN results are saved to")
	showApprox := flag.Bool("approx", false, "also print the float64 interpolation")
	flag.Var(&shares, "share", "share as x:base:value, repeatable")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	cfg := &recoverer.Config{}

	if *configFile != "" {
		var err error

		cfg, err = recoverer.LoadConfig(*configFile)
		if err != nil {
			logger.Fatalf("load config %s failed: %v", *configFile, err)
		}
	}

	if *k > 0 {
		cfg.KOverride = *k
	}

	rec := recoverer.NewRecoverer(newStorage(*dataRoot, *redisDSN, logger), cfg, logger)
	if rec == nil {
		logger.Fatal("invalid config")
	}

	failed := false

	if len(shares) > 0 {
		tc, err := inlineTestCase(shares, cfg.KOverride)
		if err != nil {
			logger.Fatalf("invalid -share: %v", err)
		}

		r, p, err := rec.Recover("shares", tc)
		failed = !report("shares", r, p, err, *showApprox) || failed
	}

	for _, item := range recoverer.Batch(context.Background(), rec, flag.Args(), logger) {
		failed = !report(item.Path, item.Result, item.Polynomial, item.Err, *showApprox) || failed
	}

	if failed {
		os.Exit(1)
	}
}

func newStorage(dataRoot, redisDSN string, logger l.Wrapper) result.Storage {
	if redisDSN != "" {
		options, err := redis.ParseURL(redisDSN)
		if err != nil {
			logger.Fatalf("invalid redis dsn: %v", err)
		}

		return redisimpls.NewRedisStorage("sharerecover", redis.NewClient(options), logger)
	}

	if dataRoot != "" {
		if err := pathutils.MustDirExists(dataRoot); err != nil {
			logger.Fatalf("data directory %s: %v", dataRoot, err)
		}

		return fmstorage.NewFMStorageEx(dataRoot, nil, true)
	}

	return nil
}

func inlineTestCase(shares []string, k int) (tc *document.TestCase, err error) {
	tc = &document.TestCase{
		Keys: document.Keys{
			N: len(shares),
			K: k,
		},
	}

	if k <= 0 {
		tc.Keys.K = len(shares)
	}

	for _, s := range shares {
		r, e := share.ParseShare(s)
		if e != nil {
			return nil, fmt.Errorf("%s: %w", s, e)
		}

		tc.Records = append(tc.Records, r)
	}

	return
}

func report(name string, r *result.Result, p fmt.Stringer, err error, showApprox bool) bool {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)

		return false
	}

	fmt.Printf("Interpolated polynomial: %s\n", p)
	fmt.Printf("Secret for %s: %s\n", name, r.Secret)

	if showApprox {
		printApprox(r)
	}

	return true
}

// printApprox reruns the selected shares through the float64 interpolator.
func printApprox(r *result.Result) {
	xs := make([]float64, 0, len(r.Shares))
	ys := make([]float64, 0, len(r.Shares))

	for _, s := range r.Shares {
		record, err := share.ParseShare(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "approx: %v\n", err)

			return
		}

		point, err := share.DecodeRecord(record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "approx: %v\n", err)

			return
		}

		x, _ := new(big.Float).SetInt(point.X).Float64()
		y, _ := new(big.Float).SetInt(point.Y).Float64()

		xs = append(xs, x)
		ys = append(ys, y)
	}

	coefficients, err := approx.Interpolate(xs, ys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "approx: %v\n", err)

		return
	}

	fmt.Printf("Approximate polynomial: %s\n", approx.Format(coefficients))
}
