// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"time"

	"go.uber.org/zap"
)

// Options configures a Sender, Receiver, or Channel.
type Options struct {
	// MaxPayload caps the total accumulated payload size (bytes) a Receiver
	// will assemble for one frame. Zero means no limit.
	MaxPayload int64

	// RetryDelay controls how Send/Recv handle iox.ErrWouldBlock from the
	// underlying transport:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration

	// Logger receives structured diagnostics (poisoning transitions). Nil
	// disables logging entirely; no allocation happens on the hot path.
	Logger *zap.Logger

	// Stats receives send/receive/poison notifications. Nil installs a
	// no-op hook. chanio never aggregates these itself (see StatsHook).
	Stats StatsHook
}

var defaultOptions = Options{
	MaxPayload: 0,
	RetryDelay: -1, // default: nonblock
	Stats:      noopStats{},
}

// Option configures Options.
type Option func(*Options)

// WithMaxPayload caps the total accumulated payload a Receiver will collect
// for a single frame before returning ErrPayloadTooLarge.
func WithMaxPayload(n int64) Option {
	return func(o *Options) { o.MaxPayload = n }
}

// WithRetryDelay sets the retry/wait policy used when the underlying
// transport returns ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior: Send/Recv return ErrWouldBlock
// immediately instead of waiting, so the caller drives resumption itself.
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

// WithLogger attaches a zap logger for poisoning diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStatsHook attaches a StatsHook for send/receive/poison notifications.
func WithStatsHook(h StatsHook) Option {
	return func(o *Options) {
		if h == nil {
			h = noopStats{}
		}
		o.Stats = h
	}
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
