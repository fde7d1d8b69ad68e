package chanio

// rawCodec is a Serializer[[]byte]/Deserializer[[]byte] identity codec used
// by internal tests that only care about framing, not encoding.
type rawCodec struct{}

func (rawCodec) Serialize(v []byte) ([]byte, error) { return v, nil }

func (rawCodec) Deserialize(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
