// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import "go.uber.org/zap"

// logPoison emits a structured warning for a freshly-latched poisoning
// error. l may be nil, in which case this is a no-op — chanio never builds
// log fields on the hot path when no logger is configured.
func logPoison(l *zap.Logger, direction string, id uint8, err error) {
	if l == nil {
		return
	}
	kind := KindIO
	switch e := err.(type) {
	case *Error:
		kind = e.Kind
	case *VersionMismatchError:
		kind = KindVersionMismatch
	case *OutOfOrderError:
		kind = KindOutOfOrder
	}
	l.Warn("chanio: direction poisoned",
		zap.String("direction", direction),
		zap.Uint8("id", id),
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
}
