// Package randutil builds the random sources used by computer players.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand whose sequence depends only on seed, so a match
// replayed with the same seed makes the same computer choices.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream of a base seed.
// The simulator hands each player of each match its own stream.
func Derive(seed int64, n int) int64 {
	return int64(splitmix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

// RandomSeed draws a seed from the operating system, for when the user did
// not ask for a reproducible match.
func RandomSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("failed to read random seed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
