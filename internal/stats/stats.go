package stats

import (
	"math"

	"pingtool/internal/models"
)

// Rating buckets a round-trip time for display.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingSlow      Rating = "slow"
)

// Summary is the aggregate fragment derived from one probe's replies.
type Summary struct {
	Received int
	Loss     float64 // percentage, one decimal
	MinRTT   float64 // milliseconds, two decimals
	AvgRTT   float64
	MaxRTT   float64
	// HasLatency is false when no reply came back; min/avg/max are
	// undefined then, not zero.
	HasLatency bool
	Success    bool
}

// Aggregate derives packet loss and latency statistics from a reply
// sequence. A probe with partial loss still counts as successful; only
// zero received replies make it fail.
func Aggregate(replies []models.ProbeReply, sent int) Summary {
	s := Summary{}

	var min, max, total float64
	for _, reply := range replies {
		if !reply.Received {
			continue
		}
		if s.Received == 0 || reply.RTT < min {
			min = reply.RTT
		}
		if reply.RTT > max {
			max = reply.RTT
		}
		total += reply.RTT
		s.Received++
	}

	s.Loss = LossPercent(sent, s.Received)

	if s.Received > 0 {
		s.MinRTT = round2(min)
		s.AvgRTT = round2(total / float64(s.Received))
		s.MaxRTT = round2(max)
		s.HasLatency = true
		s.Success = true
	}

	return s
}

// Classify buckets a single reply's round-trip time. Both boundaries
// belong to the middle tier: exactly 50 ms and exactly 150 ms are "good".
func Classify(rttMs float64) Rating {
	switch {
	case rttMs < 50:
		return RatingExcellent
	case rttMs <= 150:
		return RatingGood
	default:
		return RatingSlow
	}
}

// LossPercent computes packet loss rounded to one decimal. Requests always
// send at least one packet, so zero sent only happens on misuse and yields
// zero loss rather than NaN.
func LossPercent(sent, received int) float64 {
	if sent <= 0 {
		return 0
	}
	return round1(float64(sent-received) / float64(sent) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
