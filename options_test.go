package chanio

import (
	"testing"
	"time"
)

func TestResolveOptionsDefaults(t *testing.T) {
	o := resolveOptions(nil)
	if o.RetryDelay != -1 {
		t.Fatalf("default RetryDelay = %v, want -1 (nonblock)", o.RetryDelay)
	}
	if o.MaxPayload != 0 {
		t.Fatalf("default MaxPayload = %d, want 0", o.MaxPayload)
	}
	if _, ok := o.Stats.(noopStats); !ok {
		t.Fatalf("default Stats should be noopStats")
	}
}

func TestWithBlockAndWithNonblock(t *testing.T) {
	o := resolveOptions([]Option{WithBlock()})
	if o.RetryDelay != 0 {
		t.Fatalf("WithBlock: RetryDelay = %v, want 0", o.RetryDelay)
	}
	o = resolveOptions([]Option{WithBlock(), WithNonblock()})
	if o.RetryDelay != -1 {
		t.Fatalf("WithNonblock after WithBlock: RetryDelay = %v, want -1", o.RetryDelay)
	}
}

func TestWithRetryDelay(t *testing.T) {
	o := resolveOptions([]Option{WithRetryDelay(50 * time.Millisecond)})
	if o.RetryDelay != 50*time.Millisecond {
		t.Fatalf("RetryDelay = %v, want 50ms", o.RetryDelay)
	}
}

func TestWithMaxPayload(t *testing.T) {
	o := resolveOptions([]Option{WithMaxPayload(1024)})
	if o.MaxPayload != 1024 {
		t.Fatalf("MaxPayload = %d, want 1024", o.MaxPayload)
	}
}

func TestWithStatsHookNilFallsBackToNoop(t *testing.T) {
	o := resolveOptions([]Option{WithStatsHook(nil)})
	if _, ok := o.Stats.(noopStats); !ok {
		t.Fatalf("WithStatsHook(nil) should install noopStats")
	}
}

type countingStats struct{ sent, recv, poisoned int }

func (c *countingStats) OnFrameSent(uint8, int)     { c.sent++ }
func (c *countingStats) OnFrameReceived(uint8, int) { c.recv++ }
func (c *countingStats) OnPoison(Kind, error)       { c.poisoned++ }

func TestWithStatsHookInstallsCustomHook(t *testing.T) {
	cs := &countingStats{}
	o := resolveOptions([]Option{WithStatsHook(cs)})
	if o.Stats != StatsHook(cs) {
		t.Fatalf("Stats hook not installed")
	}
}
