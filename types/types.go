// Package types defines the shared value structs for seedcraft.
// This package contains only type definitions — no logic, no methods.
package types

// Vec3 is a 3-component vector (positions, jitter offsets).
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float64
}
