package ithub

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a short opaque unique identifier for a new entity.
func NewID() string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
