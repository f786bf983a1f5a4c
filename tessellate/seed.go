package tessellate

import "github.com/go-brep/kernel/identity"

// seedFor derives a deterministic 64-bit seed from an identity token via
// FNV-1a. Nothing in the kernel calls it; triangulation uses no seed or
// perturbation, and Tessellate stores each face's result by face index,
// so repeated runs over the same shell give identical meshes regardless
// of goroutine scheduling.
func seedFor(id identity.Token) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	v := uint64(id)
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= prime64
		v >>= 8
	}
	return h
}
