// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

// ByteTransform is an optional bytes -> bytes middleware layered around a
// base Serializer/Deserializer, per spec §4.3 ("a reference implementation
// wraps any schema encoder... and optional middleware (checksum,
// compression, authentication) as chained bytes -> bytes transforms").
//
// Forward runs after serialization, in the order transforms were given to
// Wrap. Backward runs before deserialization, in the reverse order — the
// same onion model BX-D-mini-RPC's middleware.Chain uses for handlers,
// generalized here to byte transforms:
//
//	Wrap(base, A, B, C).Serialize   = C.Forward(B.Forward(A.Forward(base.Serialize(v))))
//	Unwrap(base, A, B, C).Deserialize = base.Deserialize(A.Backward(B.Backward(C.Backward(b))))
type ByteTransform interface {
	Forward(b []byte) ([]byte, error)
	Backward(b []byte) ([]byte, error)
}

// Wrap layers transforms around base, applying them in order on Serialize.
func Wrap[T any](base Serializer[T], transforms ...ByteTransform) Serializer[T] {
	if len(transforms) == 0 {
		return base
	}
	return SerializerFunc[T](func(v T) ([]byte, error) {
		b, err := base.Serialize(v)
		if err != nil {
			return nil, err
		}
		for _, t := range transforms {
			b, err = t.Forward(b)
			if err != nil {
				return nil, err
			}
		}
		return b, nil
	})
}

// Unwrap layers transforms around base, applying them in reverse order on
// Deserialize so the last transform applied on send is the first undone on
// receive.
func Unwrap[T any](base Deserializer[T], transforms ...ByteTransform) Deserializer[T] {
	if len(transforms) == 0 {
		return base
	}
	return DeserializerFunc[T](func(b []byte) (T, error) {
		var err error
		for i := len(transforms) - 1; i >= 0; i-- {
			b, err = transforms[i].Backward(b)
			if err != nil {
				var zero T
				return zero, err
			}
		}
		return base.Deserialize(b)
	})
}
