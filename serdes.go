// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

// Serializer produces an owned, contiguous byte sequence from a value of
// type T. Implementations know nothing about packets, framing, or
// transports — they are pure value-to-bytes functions, owned by the Sender
// that uses them for the Sender's lifetime.
type Serializer[T any] interface {
	Serialize(v T) ([]byte, error)
}

// Deserializer produces a value of type T from a contiguous byte sequence.
type Deserializer[T any] interface {
	Deserialize(b []byte) (T, error)
}

// SerializerFunc adapts a plain function to a Serializer.
type SerializerFunc[T any] func(T) ([]byte, error)

func (f SerializerFunc[T]) Serialize(v T) ([]byte, error) { return f(v) }

// DeserializerFunc adapts a plain function to a Deserializer.
type DeserializerFunc[T any] func([]byte) (T, error)

func (f DeserializerFunc[T]) Deserialize(b []byte) (T, error) { return f(b) }
