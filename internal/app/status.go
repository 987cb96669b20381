package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/missionctl/internal/fetch"
)

// probeMessage is what the chat probe sends to the backend.
const probeMessage = "status"

// ProbeResult describes one endpoint check.
type ProbeResult struct {
	Name    string
	OK      bool
	Kind    fetch.Kind
	Detail  string
	Latency time.Duration
}

// Probe checks the launch, news and chat endpoints concurrently. Failures
// are reported in the results, never returned.
func Probe(ctx context.Context, s Services, chatTimeout time.Duration, logger *zap.Logger) []ProbeResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	checks := []struct {
		name string
		run  func(context.Context) (string, error)
	}{
		{"launch", func(ctx context.Context) (string, error) {
			r := s.Launch.Upcoming(ctx, 1)
			if !r.OK() {
				return "", r.Err
			}
			if len(r.Value) == 0 {
				return "no upcoming launches", nil
			}
			return fmt.Sprintf("next: %s", r.Value[0].Name), nil
		}},
		{"news", func(ctx context.Context) (string, error) {
			r := s.News.Latest(ctx, 1)
			if !r.OK() {
				return "", r.Err
			}
			if len(r.Value) == 0 {
				return "no articles", nil
			}
			return fmt.Sprintf("latest: %s", r.Value[0].Title), nil
		}},
		{"chat", func(ctx context.Context) (string, error) {
			if chatTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, chatTimeout)
				defer cancel()
			}
			reply, err := s.Chat.Reply(ctx, probeMessage)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("reply: %d chars", len(reply)), nil
		}},
	}

	results := make([]ProbeResult, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		i, check := i, check
		g.Go(func() error {
			start := time.Now()
			detail, err := check.run(gctx)
			res := ProbeResult{Name: check.name, OK: err == nil, Detail: detail, Latency: time.Since(start)}
			if err != nil {
				res.Kind = fetch.Classify(err)
				res.Detail = err.Error()
				logger.Warn("probe failed", zap.String("endpoint", check.name), zap.Error(err))
			}
			results[i] = res
			return nil // failures are data, not group errors
		})
	}
	_ = g.Wait()
	return results
}

// WriteStatus prints probe results as an aligned table.
func WriteStatus(w io.Writer, results []ProbeResult) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ENDPOINT\tSTATE\tLATENCY\tDETAIL")
	for _, r := range results {
		state := "UP"
		if !r.OK {
			state = "DOWN (" + r.Kind.String() + ")"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", r.Name, state, r.Latency.Round(time.Millisecond), r.Detail)
	}
	return writer.Flush()
}
