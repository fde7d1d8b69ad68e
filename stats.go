// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

// StatsHook receives notifications from a Sender/Receiver pair. chanio does
// not collect, aggregate, or export statistics itself (statistics
// collection is explicitly out of scope, see spec §1) — these are call
// sites only, for an external collaborator to wire into its own metrics
// system. The default hook is noopStats, and WithStatsHook(nil) installs
// noopStats as well.
type StatsHook interface {
	// OnFrameSent is called after a frame is fully written, with its id and
	// the number of packets it was split into.
	OnFrameSent(id uint8, packets int)
	// OnFrameReceived is called after a frame is fully assembled and
	// deserialized, with its id and the number of packets it arrived in.
	OnFrameReceived(id uint8, packets int)
	// OnPoison is called the moment a direction latches a fatal error.
	OnPoison(kind Kind, err error)
}

type noopStats struct{}

func (noopStats) OnFrameSent(uint8, int)     {}
func (noopStats) OnFrameReceived(uint8, int) {}
func (noopStats) OnPoison(Kind, error)       {}
