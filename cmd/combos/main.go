// Command combos prints the combinations or permutations of its arguments,
// one per line, in lexicographic order.
//
// Usage:
//
//	combos [-mode combo|all|perm] [-r N] [-parallel P] [-sep S] [-count] elems...
//
// Modes:
//   - combo: every r-subset of elems (default, r=2).
//   - all:   every non-empty subset, size 1 first and the full set last.
//   - perm:  every ordering of elems.
//
// With -parallel P > 1 the enumeration is partitioned into at most P
// independent blocks that are formatted concurrently; output order is the
// same as the sequential run. -count prints the number of values instead.
// The klog flags (-v, -logtostderr, ...) are accepted as well.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/destel/rill"
	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lazycomb/combo"
	"github.com/katalvlaran/lazycomb/lazy"
	"github.com/katalvlaran/lazycomb/perm"
	"github.com/katalvlaran/lazycomb/source"
)

const (
	modeCombo = "combo"
	modeAll   = "all"
	modePerm  = "perm"
)

// errUsage marks bad flag values.
var errUsage = errors.New("combos: invalid usage")

type config struct {
	mode     string
	r        int
	parallel int
	sep      string
	count    bool
	elems    []string
}

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		klog.FromContext(ctx).Error(err, "enumeration failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := klog.FromContext(ctx).WithName("combos")

	seq, err := newSequence(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.count {
		_, err = fmt.Fprintln(stdout, seq.EstimateRemaining())

		return err
	}
	logger.V(1).Info("enumerating", "mode", cfg.mode, "n", len(cfg.elems), "r", cfg.r,
		"estimate", seq.EstimateRemaining().String())

	if cfg.parallel > 1 {
		return drainParallel(seq, cfg, stdout, logger)
	}
	w := bufio.NewWriter(stdout)
	if err = writeAll(w, seq, cfg.sep); err != nil {
		return err
	}

	return w.Flush()
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("combos", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mode, "mode", modeCombo, "enumeration: combo, all or perm")
	fs.IntVar(&cfg.r, "r", 2, "subset size for -mode combo")
	fs.IntVar(&cfg.parallel, "parallel", 1, "number of concurrent partitions")
	fs.StringVar(&cfg.sep, "sep", " ", "separator between elements of one value")
	fs.BoolVar(&cfg.count, "count", false, "print the number of values and exit")
	klog.InitFlags(fs)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.elems = fs.Args()

	if !slices.Contains([]string{modeCombo, modeAll, modePerm}, cfg.mode) {
		return config{}, fmt.Errorf("unknown mode %q: %w", cfg.mode, errUsage)
	}
	if cfg.parallel < 1 {
		return config{}, fmt.Errorf("parallel must be at least 1, got %d: %w", cfg.parallel, errUsage)
	}

	return cfg, nil
}

func newSequence(cfg config, logger logr.Logger) (lazy.Sequence[[]string], error) {
	src := source.Of(cfg.elems...)
	switch cfg.mode {
	case modeAll:
		g, err := combo.NewAllSizes(src, combo.WithLogger(logger))
		if err != nil {
			return nil, err
		}

		return g, nil
	case modePerm:
		g, err := perm.New(src, perm.WithLogger(logger))
		if err != nil {
			return nil, err
		}

		return g, nil
	default:
		g, err := combo.New(src, cfg.r, combo.WithLogger(logger))
		if err != nil {
			return nil, err
		}

		return g, nil
	}
}

// drainParallel formats each partition on its own worker and writes the
// blocks in partition order.
func drainParallel(seq lazy.Sequence[[]string], cfg config, stdout io.Writer, logger logr.Logger) error {
	parts := lazy.Partition(seq, cfg.parallel)
	logger.V(1).Info("partitioned", "requested", cfg.parallel, "parts", len(parts))

	blocks := rill.OrderedMap(rill.FromSeq(slices.Values(parts), nil), cfg.parallel,
		func(part lazy.Sequence[[]string]) (string, error) {
			var b strings.Builder
			err := writeAll(&b, part, cfg.sep)

			return b.String(), err
		})
	// ForEach stops at the first failed write; release the workers still sending.
	defer rill.DrainNB(blocks)

	return rill.ForEach(blocks, 1, func(block string) error {
		_, err := io.WriteString(stdout, block)

		return err
	})
}

func writeAll(w io.Writer, seq lazy.Sequence[[]string], sep string) error {
	for v, err := range lazy.All(seq) {
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, strings.Join(v, sep)); err != nil {
			return err
		}
	}

	return nil
}
