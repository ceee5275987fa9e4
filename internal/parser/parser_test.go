package parser

import (
	"reflect"
	"testing"

	"pingtool/internal/models"
)

func request(count int) models.ProbeRequest {
	return models.ProbeRequest{
		Target: models.Target{Host: "8.8.8.8", Kind: models.KindIPv4},
		Count:  count,
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		count        int
		wantRTTs     []float64
		wantLost     int
		wantSent     int
		wantReceived int
		wantSummary  bool
	}{
		{
			name: "linux full run",
			raw: `PING 8.8.8.8 (8.8.8.8) 56(84) bytes of data.
64 bytes from 8.8.8.8: icmp_seq=1 ttl=118 time=15.34 ms
64 bytes from 8.8.8.8: icmp_seq=2 ttl=118 time=18.23 ms
64 bytes from 8.8.8.8: icmp_seq=3 ttl=118 time=19.87 ms
64 bytes from 8.8.8.8: icmp_seq=4 ttl=118 time=23.45 ms

--- 8.8.8.8 ping statistics ---
4 packets transmitted, 4 received, 0% packet loss, time 3004ms
rtt min/avg/max/mdev = 15.340/19.222/23.450/2.905 ms`,
			count:        4,
			wantRTTs:     []float64{15.34, 18.23, 19.87, 23.45},
			wantSent:     4,
			wantReceived: 4,
			wantSummary:  true,
		},
		{
			name: "macos full run",
			raw: `PING 8.8.8.8 (8.8.8.8): 56 data bytes
64 bytes from 8.8.8.8: icmp_seq=0 ttl=118 time=44.347 ms
64 bytes from 8.8.8.8: icmp_seq=1 ttl=118 time=41.002 ms

--- 8.8.8.8 ping statistics ---
2 packets transmitted, 2 packets received, 0.0% packet loss
round-trip min/avg/max/stddev = 41.002/42.674/44.347/1.672 ms`,
			count:        2,
			wantRTTs:     []float64{44.347, 41.002},
			wantSent:     2,
			wantReceived: 2,
			wantSummary:  true,
		},
		{
			name: "windows full run",
			raw: `Pinging 8.8.8.8 with 32 bytes of data:
Reply from 8.8.8.8: bytes=32 time=15ms TTL=118
Reply from 8.8.8.8: bytes=32 time<1ms TTL=118
Reply from 8.8.8.8: bytes=32 time=17ms TTL=118
Reply from 8.8.8.8: bytes=32 time=16ms TTL=118

Ping statistics for 8.8.8.8:
    Packets: Sent = 4, Received = 4, Lost = 0 (0% loss),
Approximate round trip times in milli-seconds:
    Minimum = 1ms, Maximum = 17ms, Average = 12ms`,
			count:        4,
			wantRTTs:     []float64{15, 1, 17, 16},
			wantSent:     4,
			wantReceived: 4,
			wantSummary:  true,
		},
		{
			name: "windows partial loss",
			raw: `Pinging 10.0.0.99 with 32 bytes of data:
Reply from 10.0.0.99: bytes=32 time=8ms TTL=64
Request timed out.
Reply from 10.0.0.99: bytes=32 time=9ms TTL=64
Request timed out.

Ping statistics for 10.0.0.99:
    Packets: Sent = 4, Received = 2, Lost = 2 (50% loss),`,
			count:        4,
			wantRTTs:     []float64{8, 9},
			wantLost:     2,
			wantSent:     4,
			wantReceived: 2,
			wantSummary:  true,
		},
		{
			name: "macos timeouts per sequence",
			raw: `PING 10.1.1.1 (10.1.1.1): 56 data bytes
Request timeout for icmp_seq 0
Request timeout for icmp_seq 1
64 bytes from 10.1.1.1: icmp_seq=2 ttl=64 time=102.5 ms

--- 10.1.1.1 ping statistics ---
3 packets transmitted, 1 packets received, 66.7% packet loss`,
			count:        3,
			wantRTTs:     []float64{102.5},
			wantLost:     2,
			wantSent:     3,
			wantReceived: 1,
			wantSummary:  true,
		},
		{
			name: "windows unreachable",
			raw: `Pinging 192.168.50.2 with 32 bytes of data:
Reply from 192.168.1.1: Destination host unreachable.
Reply from 192.168.1.1: Destination host unreachable.

Ping statistics for 192.168.50.2:
    Packets: Sent = 2, Received = 0, Lost = 2 (100% loss),`,
			count:        2,
			wantLost:     2,
			wantSent:     2,
			wantReceived: 0,
			wantSummary:  true,
		},
		{
			name: "replies without summary falls back to request count",
			raw: `64 bytes from 8.8.8.8: icmp_seq=1 ttl=118 time=12.3 ms
64 bytes from 8.8.8.8: icmp_seq=2 ttl=118 time=13.1 ms`,
			count:        4,
			wantRTTs:     []float64{12.3, 13.1},
			wantSent:     4,
			wantReceived: 2,
		},
		{
			name:     "unit-less time token",
			raw:      `reply seq=1 time=31.7`,
			count:    1,
			wantRTTs: []float64{31.7},
			wantSent: 1, wantReceived: 1,
		},
		{
			name:     "unknown host error text",
			raw:      "ping: unknown host example.invalid\n",
			count:    4,
			wantSent: 4,
		},
		{
			name:     "empty output",
			raw:      "",
			count:    4,
			wantSent: 4,
		},
		{
			name:     "garbage output",
			raw:      "zxc 123 !!! nothing resembling ping output at all\n\n\t",
			count:    4,
			wantSent: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw, request(tt.count))

			var rtts []float64
			lost := 0
			for _, r := range got.Replies {
				if r.Received {
					rtts = append(rtts, r.RTT)
				} else {
					lost++
				}
			}

			if !reflect.DeepEqual(rtts, tt.wantRTTs) {
				t.Errorf("reply RTTs = %v, want %v", rtts, tt.wantRTTs)
			}
			if lost != tt.wantLost {
				t.Errorf("lost replies = %d, want %d", lost, tt.wantLost)
			}
			if got.Sent != tt.wantSent {
				t.Errorf("Sent = %d, want %d", got.Sent, tt.wantSent)
			}
			if got.Received != tt.wantReceived {
				t.Errorf("Received = %d, want %d", got.Received, tt.wantReceived)
			}
			if got.SummaryFound != tt.wantSummary {
				t.Errorf("SummaryFound = %v, want %v", got.SummaryFound, tt.wantSummary)
			}
		})
	}
}

func TestParseSequenceNumbering(t *testing.T) {
	raw := `Reply from 10.0.0.1: bytes=32 time=8ms TTL=64
Request timed out.
Reply from 10.0.0.1: bytes=32 time=9ms TTL=64`

	got := Parse(raw, request(3))
	if len(got.Replies) != 3 {
		t.Fatalf("replies = %d, want 3", len(got.Replies))
	}
	for i, r := range got.Replies {
		if r.Seq != i {
			t.Errorf("reply %d has Seq = %d", i, r.Seq)
		}
	}
	if got.Replies[1].Received {
		t.Error("middle reply should be marked lost")
	}
}

// The parser keeps no state between calls, so identical input must yield
// identical output.
func TestParseIdempotent(t *testing.T) {
	raw := `64 bytes from 8.8.8.8: icmp_seq=1 ttl=118 time=15.34 ms
Request timeout for icmp_seq 2
4 packets transmitted, 1 received, 75% packet loss`

	first := Parse(raw, request(4))
	second := Parse(raw, request(4))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
