package logger

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// idGenerator draws request log ids from a ChaCha8 stream seeded once at
// startup.
type idGenerator struct {
	randSource *rand.ChaCha8
}

func newIDGenerator() *idGenerator {
	var seed [32]byte
	_ = binary.Read(crand.Reader, binary.LittleEndian, &seed)
	return &idGenerator{randSource: rand.NewChaCha8(seed)}
}

// NewLogID returns a non-zero log ID.
func (gen *idGenerator) NewLogID() LogID {
	sid := LogID{}
	for {
		_, _ = gen.randSource.Read(sid[:])
		if sid.IsValid() {
			break
		}
	}
	return sid
}
