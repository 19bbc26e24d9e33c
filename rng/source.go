package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// Source is the raw generator capability behind an Engine: a stream of
// uniform 64-bit values. Any deterministic generator works, and
// *math/rand.Rand satisfies the interface, but the default xorshift64*
// source is guaranteed bit-stable across platforms and releases.
type Source interface {
	Uint64() uint64
}

// xorShift64Star is the default source. Fast, 2^64-1 period, and more
// than adequate statistically for procedural content. Not for crypto.
type xorShift64Star struct {
	s uint64
}

// newXorShift64Star seeds the generator. The seed is run through
// splitmix64 so that small or similar seeds still start from
// well-mixed state. State must never be zero.
func newXorShift64Star(seed int64) *xorShift64Star {
	s := splitmix64(uint64(seed))
	if s == 0 {
		s = 0x9e3779b97f4a7c15
	}
	return &xorShift64Star{s: s}
}

func (x *xorShift64Star) Uint64() uint64 {
	v := x.s
	v ^= v >> 12
	v ^= v << 25
	v ^= v >> 27
	x.s = v
	return v * 2685821657736338717
}

// splitmix64 mixes a seed into a new 64-bit state (seed expansion).
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// entropySeed draws a seed from system entropy, falling back to the
// wall clock if the entropy source fails.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
