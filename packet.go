// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

// chunkCount returns the number of packets a serialized payload of length n
// splits into: one zero-payload packet for an empty value, otherwise
// ceil(n / MaxPayloadSize).
func chunkCount(n int) int {
	if n == 0 {
		return 1
	}
	return (n + MaxPayloadSize - 1) / MaxPayloadSize
}

// chunkBounds returns the [start:end) slice bounds of chunk i out of a
// total serialized length n, using the same MaxPayloadSize chunking as
// chunkCount.
func chunkBounds(i, n int) (start, end int) {
	start = i * MaxPayloadSize
	end = start + MaxPayloadSize
	if end > n {
		end = n
	}
	return start, end
}
