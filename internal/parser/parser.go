package parser

import (
	"regexp"
	"strconv"
	"strings"

	"pingtool/internal/models"
)

// Ping output varies by platform, locale and version, so extraction is
// pattern based and every pattern is optional. Nothing in here ever fails:
// unrecognizable text degrades to zero replies and the caller decides what
// that means from the process exit status.
var (
	// Per-reply latency tokens.
	// Linux/macOS: "time=12.3 ms", Windows: "time=15ms" or "time<1ms".
	replyTimeRe = regexp.MustCompile(`(?i)time[=<]([0-9]+(?:\.[0-9]+)?)\s*(?:ms)?`)

	// Per-attempt loss markers.
	// Windows: "Request timed out." / "Destination host unreachable."
	// macOS: "Request timeout for icmp_seq 0"
	// Linux with -O: "no answer yet for icmp_seq=2"
	lostLineRe = regexp.MustCompile(`(?i)request timed out|request timeout for icmp_seq|destination (?:host|net) unreachable|no answer yet`)

	// Summary counters.
	// Linux: "4 packets transmitted, 4 received, 0% packet loss"
	// macOS: "4 packets transmitted, 4 packets received, 0.0% packet loss"
	unixSummaryRe = regexp.MustCompile(`(\d+) packets transmitted, (\d+)(?: packets)? received`)
	// Windows: "Packets: Sent = 4, Received = 4, Lost = 0 (0% loss)"
	winSummaryRe = regexp.MustCompile(`Sent = (\d+), Received = (\d+)`)
)

// Outcome holds the structured view of one ping invocation's raw text.
type Outcome struct {
	Replies []models.ProbeReply
	// Sent and Received come from the platform summary line when one was
	// found, otherwise from the reply sequence and the request count.
	Sent         int
	Received     int
	SummaryFound bool
}

// Parse scans raw ping output into per-reply data plus summary counters.
func Parse(raw string, req models.ProbeRequest) Outcome {
	outcome := Outcome{}

	for _, line := range strings.Split(raw, "\n") {
		if m := replyTimeRe.FindStringSubmatch(line); m != nil {
			rtt, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			outcome.Replies = append(outcome.Replies, models.ProbeReply{
				Seq:      len(outcome.Replies),
				RTT:      rtt,
				Received: true,
			})
			continue
		}
		if lostLineRe.MatchString(line) {
			outcome.Replies = append(outcome.Replies, models.ProbeReply{
				Seq: len(outcome.Replies),
			})
		}
	}

	outcome.Sent, outcome.Received, outcome.SummaryFound = parseSummary(raw)
	if !outcome.SummaryFound {
		outcome.Sent = req.Count
		outcome.Received = countReceived(outcome.Replies)
	}

	return outcome
}

func parseSummary(raw string) (sent, received int, found bool) {
	for _, re := range []*regexp.Regexp{unixSummaryRe, winSummaryRe} {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		s, errS := strconv.Atoi(m[1])
		r, errR := strconv.Atoi(m[2])
		if errS != nil || errR != nil {
			continue
		}
		return s, r, true
	}
	return 0, 0, false
}

func countReceived(replies []models.ProbeReply) int {
	n := 0
	for _, r := range replies {
		if r.Received {
			n++
		}
	}
	return n
}
