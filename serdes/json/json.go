// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package json provides a self-describing chanio Serializer/Deserializer
// backed by sonic, for any message type that round-trips through struct
// tags rather than a fixed binary layout.
package json

import (
	"github.com/bytedance/sonic"

	"chanproto.dev/chanio"
)

var api = sonic.ConfigDefault

// Codec implements chanio.Serializer[T] and chanio.Deserializer[T] using
// sonic's JSON encoding.
type Codec[T any] struct{}

// New returns a Codec for T.
func New[T any]() Codec[T] { return Codec[T]{} }

// Serialize encodes v as JSON.
func (Codec[T]) Serialize(v T) ([]byte, error) {
	return api.Marshal(v)
}

// Deserialize decodes b into a T.
func (Codec[T]) Deserialize(b []byte) (T, error) {
	var v T
	err := api.Unmarshal(b, &v)
	return v, err
}

var (
	_ chanio.Serializer[struct{}]   = Codec[struct{}]{}
	_ chanio.Deserializer[struct{}] = Codec[struct{}]{}
)
