package models

import "time"

// TargetKind tags how a validated target string was classified.
type TargetKind string

const (
	KindIPv4   TargetKind = "IPv4"
	KindDomain TargetKind = "Domain"
)

// Target is a syntactically validated probe destination
type Target struct {
	Host string     `json:"host"`
	Kind TargetKind `json:"kind"`
}

// ProbeRequest describes a single probe: where, how many echoes, and how
// long the external ping process may run in total.
type ProbeRequest struct {
	Target  Target        `json:"target"`
	Count   int           `json:"count"`
	Timeout time.Duration `json:"timeout"`
}

// ProbeReply is one echo attempt within a probe. Received=false means the
// packet was lost or timed out; RTT is meaningless in that case, not zero.
type ProbeReply struct {
	Seq      int     `json:"seq"`
	RTT      float64 `json:"rtt_ms"`
	Received bool    `json:"received"`
}

// ProbeResult is the immutable outcome of one probe
type ProbeResult struct {
	Timestamp time.Time  `json:"timestamp"`
	Target    string     `json:"target"`
	Kind      TargetKind `json:"kind"`
	Success   bool       `json:"success"`
	Sent      int        `json:"packets_sent"`
	Received  int        `json:"packets_received"`
	Loss      float64    `json:"packet_loss"` // percentage
	MinRTT    float64    `json:"min_rtt"`     // milliseconds
	AvgRTT    float64    `json:"avg_rtt"`
	MaxRTT    float64    `json:"max_rtt"`
	// HasLatency is false when zero replies were received, in which case
	// MinRTT/AvgRTT/MaxRTT are undefined rather than zero.
	HasLatency bool         `json:"has_latency"`
	Replies    []ProbeReply `json:"replies"`
	Error      string       `json:"error,omitempty"`
}
