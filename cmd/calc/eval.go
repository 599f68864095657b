package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] [expression ...]",
		Short: "Evaluate expressions",
		Long: `Eval evaluates each argument as an expression, and each non-blank line of
the file given with --file. Results are printed in input order.`,
		RunE: a.runEval,
	}
	addEvalFlags(cmd)
	return cmd
}

func addEvalFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "evaluate each line of a file (- for stdin)")
	cmd.Flags().Bool("plain", false, "print bare results")
	cmd.Flags().Int("workers", 0, "concurrent evaluations (default from config)")
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	var in io.Reader
	switch name {
	case "":
		if len(args) == 0 {
			return fmt.Errorf("no expressions to evaluate")
		}
	case "-":
		in = cmd.InOrStdin()
	default:
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return a.evalSources(cmd, args, in)
}

// evalSources evaluates args followed by the non-blank lines of in, if in is
// not nil, and prints every result.
func (a *app) evalSources(cmd *cobra.Command, args []string, in io.Reader) error {
	srcs := append([]string(nil), args...)
	if in != nil {
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	workers := a.cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
		if workers <= 0 {
			return fmt.Errorf("--workers must be positive, not %d", workers)
		}
	}
	plain, _ := cmd.Flags().GetBool("plain")

	results, err := a.evalAll(cmd.Context(), srcs, workers)
	if err != nil {
		return err
	}
	p := newPrinter(cmd.OutOrStdout(), a.color, plain)
	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
		}
		p.print(srcs[i], r.v, r.err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}

// outcome is the result of evaluating one expression.
type outcome struct {
	v   float64
	err error
}

// evalAll evaluates expressions concurrently, at most workers at a time.
// Results are in the same order as srcs. The error is non-nil only if ctx
// ends before every expression is evaluated.
func (a *app) evalAll(ctx context.Context, srcs []string, workers int) ([]outcome, error) {
	results := make([]outcome, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, src := range srcs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := calc.Eval(src)
			results[i] = outcome{v: v, err: err}
			if err != nil {
				a.log.Debug("evaluated", "input", src, "kind", calc.KindOf(err).String(), "error", err)
			} else {
				a.log.Debug("evaluated", "input", src, "result", v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}
	return lines, nil
}
