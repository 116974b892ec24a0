package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/octonav"
	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/observability"
)

const (
	defaultBenchRequests = 1000
	metricsShutdownWait  = 5 * time.Second
)

// ErrNoRequests is returned when --requests is not positive.
var ErrNoRequests = errors.New("requests must be positive")

type benchOptions struct {
	scenePath   string
	requests    int
	seed        uint64
	metricsAddr string
}

// NewBenchCommand creates the bench subcommand.
func NewBenchCommand(flags *GlobalFlags) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run random path requests through the scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.requests <= 0 {
				return ErrNoRequests
			}

			return runBench(cmd.Context(), flags, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.scenePath, "scene", "s", "", sceneFlagUsage)
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", defaultBenchRequests, "number of path requests")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed for request endpoints")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address while running")

	return cmd
}

type benchReport struct {
	submitted int
	errors    int
	byStatus  map[octonav.Status]int
	latencies []time.Duration
	elapsed   time.Duration
}

func runBench(ctx context.Context, flags *GlobalFlags, opts benchOptions, out, errOut io.Writer) error {
	s, err := openSession(flags, opts.scenePath, errOut)
	if err != nil {
		return err
	}

	var extra []octonav.Option

	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()

		collector, err := observability.NewPrometheusCollector(reg)
		if err != nil {
			return err
		}

		stop, err := serveMetrics(opts.metricsAddr, reg)
		if err != nil {
			return err
		}
		defer stop()

		fmt.Fprintf(errOut, "serving metrics on http://%s/metrics\n", opts.metricsAddr)

		extra = append(extra, octonav.WithMetricsCollector(collector))
	}

	nav, err := s.build(ctx, extra...)
	if err != nil {
		return err
	}

	root := nav.Tree().Root
	if root == nil {
		return octonav.ErrEmptyNavigation
	}

	sched := nav.NewScheduler(octonav.SchedulerOptions{
		RequestsPerSecond: s.cfg.Scheduler.RequestsPerSecond,
		Burst:             s.cfg.Scheduler.Burst,
		Buffer:            s.cfg.Scheduler.Buffer,
	})

	report := &benchReport{byStatus: make(map[octonav.Status]int)}
	done := make(chan struct{})

	go func() {
		defer close(done)

		for resp := range sched.Results() {
			if resp.Err != nil {
				report.errors++
				continue
			}

			report.byStatus[resp.Result.Status]++
			report.latencies = append(report.latencies, resp.Duration)
		}
	}()

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	began := time.Now()

	var submitErr error

	for range opts.requests {
		start, _ := nav.FindClosestCell(randomPoint(rng, root.Bounds))
		goal, _ := nav.FindClosestCell(randomPoint(rng, root.Bounds))

		if _, submitErr = sched.Submit(ctx, octonav.PathRequest{Start: start, Goal: goal}); submitErr != nil {
			break
		}

		report.submitted++
	}

	_ = sched.Close()
	<-done

	report.elapsed = time.Since(began)

	if submitErr != nil {
		return fmt.Errorf("submit: %w", submitErr)
	}

	renderBench(out, report, nav.Stats().Pool)

	return nil
}

func randomPoint(rng *rand.Rand, b geom.Bounds) geom.Vec3 {
	lo, size := b.Min(), b.Size

	return geom.V3(
		lo.X+rng.Float32()*size.X,
		lo.Y+rng.Float32()*size.Y,
		lo.Z+rng.Float32()*size.Z,
	)
}

func serveMetrics(addr string, g prometheus.Gatherer) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{Handler: observability.Handler(g), ReadHeaderTimeout: time.Second}

	go func() { _ = srv.Serve(ln) }()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownWait)
		defer cancel()

		_ = srv.Shutdown(ctx)
	}, nil
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	return sorted[int(p*float64(len(sorted)-1))]
}

func renderBench(out io.Writer, r *benchReport, pool octonav.PoolStats) {
	slices.Sort(r.latencies)

	var throughput float64
	if r.elapsed > 0 {
		throughput = float64(r.submitted) / r.elapsed.Seconds()
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Requests", humanize.Comma(int64(r.submitted))},
		{"Found", humanize.Comma(int64(r.byStatus[octonav.StatusFound]))},
		{"Unreachable", humanize.Comma(int64(r.byStatus[octonav.StatusUnreachable]))},
		{"Budget exceeded", humanize.Comma(int64(r.byStatus[octonav.StatusBudgetExceeded]))},
		{"Errors", humanize.Comma(int64(r.errors))},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"p50", percentile(r.latencies, 0.50)},
		{"p99", percentile(r.latencies, 0.99)},
		{"Throughput", humanize.FormatFloat("#,###.#", throughput) + " req/s"},
		{"Elapsed", r.elapsed.Round(time.Millisecond)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Pool rents", humanize.Comma(int64(pool.Rents))},
		{"Pool overflows", humanize.Comma(int64(pool.Overflows))},
	})
	tw.Render()
}
