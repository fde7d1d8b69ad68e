// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package structenc provides a schema-driven chanio Serializer/Deserializer
// for fixed-layout structs, for message types whose wire shape is declared
// with `struc` tags rather than self-describing field names.
package structenc

import (
	"bytes"

	"github.com/lunixbochs/struc"

	"chanproto.dev/chanio"
)

// Codec implements chanio.Serializer[*T] and chanio.Deserializer[*T] by
// packing/unpacking T's exported fields per their `struc` tags. T must be a
// struct type; callers exchange pointers to it.
type Codec[T any] struct{}

// New returns a Codec for *T.
func New[T any]() Codec[T] { return Codec[T]{} }

// Serialize packs v into its fixed-layout wire representation.
func (Codec[T]) Serialize(v *T) ([]byte, error) {
	var buf bytes.Buffer
	if err := struc.Pack(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize unpacks b into a new *T.
func (Codec[T]) Deserialize(b []byte) (*T, error) {
	v := new(T)
	if err := struc.Unpack(bytes.NewReader(b), v); err != nil {
		return nil, err
	}
	return v, nil
}

var (
	_ chanio.Serializer[*struct{}]   = Codec[struct{}]{}
	_ chanio.Deserializer[*struct{}] = Codec[struct{}]{}
)
