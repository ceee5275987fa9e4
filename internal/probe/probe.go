package probe

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"pingtool/internal/command"
	"pingtool/internal/models"
	"pingtool/internal/parser"
	"pingtool/internal/stats"
	"pingtool/internal/target"
)

// DefaultCount is the number of echoes sent when the caller doesn't say.
const DefaultCount = 4

// DefaultReplyBound is the assumed worst-case latency for a single echo,
// used to derive the bounded wait for the whole process.
const DefaultReplyBound = 5 * time.Second

// Prober runs the whole pipeline for one target: validate, build the
// argument list, execute, parse, aggregate. It holds no mutable state
// between probes.
type Prober struct {
	executor   models.Executor
	family     command.OSFamily
	replyBound time.Duration
}

// New creates a Prober for the running platform.
func New(executor models.Executor, replyBound time.Duration) *Prober {
	if replyBound <= 0 {
		replyBound = DefaultReplyBound
	}
	return &Prober{
		executor:   executor,
		family:     command.Detect(),
		replyBound: replyBound,
	}
}

// Probe issues one probe against rawTarget. The only error it returns is a
// validation failure; everything after validation, including a missing ping
// binary or a timed-out process, is expressed on the ProbeResult itself.
func (p *Prober) Probe(ctx context.Context, rawTarget string, count int) (models.ProbeResult, error) {
	tgt, err := target.Classify(rawTarget)
	if err != nil {
		return models.ProbeResult{}, err
	}

	if count < 1 {
		count = DefaultCount
	}

	req := models.ProbeRequest{
		Target:  tgt,
		Count:   count,
		Timeout: time.Duration(count) * p.replyBound,
	}

	result := models.ProbeResult{
		Timestamp: time.Now(),
		Target:    tgt.Host,
		Kind:      tgt.Kind,
	}

	runCtx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	args := command.Build(req, p.family)
	log.Infof("probing %s (%s) with %d packets", tgt.Host, tgt.Kind, count)

	execResult, err := p.executor.Run(runCtx, args)
	if err != nil {
		// The process never ran, so there is nothing to parse.
		log.Errorf("probe execution failed: %v", err)
		result.Error = err.Error()
		return result, nil
	}

	if execResult.TimedOut {
		log.Warnf("ping against %s exceeded %v, keeping partial output", tgt.Host, req.Timeout)
	}

	outcome := parser.Parse(execResult.Stdout, req)
	summary := stats.Aggregate(outcome.Replies, outcome.Sent)

	result.Sent = outcome.Sent
	result.Received = summary.Received
	result.Loss = summary.Loss
	result.Success = summary.Success
	result.Replies = outcome.Replies
	if summary.HasLatency {
		result.MinRTT = summary.MinRTT
		result.AvgRTT = summary.AvgRTT
		result.MaxRTT = summary.MaxRTT
		result.HasLatency = true
	}

	// The platform summary is the cross-check: when its counters disagree
	// with what we extracted per reply, trust the summary. Locale-specific
	// reply lines can defeat the token patterns while the counters parse.
	if outcome.SummaryFound && outcome.Received != summary.Received {
		log.Debugf("summary reports %d/%d, reply tokens yield %d; using summary counters",
			outcome.Received, outcome.Sent, summary.Received)
		result.Received = outcome.Received
		result.Loss = stats.LossPercent(outcome.Sent, outcome.Received)
		result.Success = outcome.Received > 0
	}

	if !result.Success && execResult.Stderr != "" {
		result.Error = firstLine(execResult.Stderr)
	}

	return result, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
