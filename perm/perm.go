// Package perm implements permutation algebra: a bijection on {0,...,n-1}
// stored as a slice of n distinct values in that range.
package perm

import (
	"fmt"
	"math/rand/v2"
)

// Perm is a permutation of {0,...,size-1}.
type Perm struct {
	vec []int
}

// New validates vec and returns a Perm. Validity is enforced on
// construction except via NewUnsafe, used by internal fast paths.
func New(vec []int) (Perm, error) {
	p := Perm{vec: append([]int(nil), vec...)}
	if !p.IsValid() {
		return Perm{}, fmt.Errorf("perm: invalid permutation %v", vec)
	}
	return p, nil
}

// NewUnsafe skips validation; for internal fast paths that construct
// permutations by hand and can prove validity by inspection.
func NewUnsafe(vec []int) Perm { return Perm{vec: vec} }

// Identity is the identity permutation on {0,...,size-1}.
func Identity(size int) Perm {
	vec := make([]int, size)
	for i := range vec {
		vec[i] = i
	}
	return Perm{vec: vec}
}

// FromFn builds a permutation from f applied to 0..size.
func FromFn(size int, f func(int) int) Perm {
	vec := make([]int, size)
	for i := range vec {
		vec[i] = f(i)
	}
	return Perm{vec: vec}
}

func (p Perm) Size() int    { return len(p.vec) }
func (p Perm) Apply(n int) int { return p.vec[n] }

// Vec exposes the underlying slice (read-only by convention; callers must
// not mutate it).
func (p Perm) Vec() []int { return p.vec }

// Inverse returns p^-1.
func (p Perm) Inverse() Perm {
	v := make([]int, len(p.vec))
	for i, n := range p.vec {
		v[n] = i
	}
	return Perm{vec: v}
}

// Compose returns a∘b, i.e. (a∘b)(i) = a(b(i)).
func Compose(a, b Perm) Perm {
	if a.Size() != b.Size() {
		panic(fmt.Sprintf("perm: composed perms must have same size (%d vs %d)", a.Size(), b.Size()))
	}
	v := make([]int, a.Size())
	for i := range v {
		v[i] = a.vec[b.vec[i]]
	}
	return Perm{vec: v}
}

// IsValid reports whether vec is a bijection on {0,...,size-1}.
func (p Perm) IsValid() bool {
	seen := make([]bool, len(p.vec))
	for _, v := range p.vec {
		if v < 0 || v >= len(p.vec) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Random returns a uniformly random permutation of size n, drawn via a
// Fisher-Yates shuffle off the given rand.Rand (so callers can pin the
// source).
func Random(rng *rand.Rand, n int) Perm {
	vec := make([]int, n)
	for i := range vec {
		vec[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		vec[i], vec[j] = vec[j], vec[i]
	}
	return Perm{vec: vec}
}

// All enumerates all n! permutations of {0,...,n-1} via Heap's algorithm.
// Used only by slow reference routines and by tests for n <= 9.
func All(n int) []Perm {
	var out []Perm
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			cp := append([]int(nil), arr...)
			out = append(out, Perm{vec: cp})
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				arr[i], arr[k-1] = arr[k-1], arr[i]
			} else {
				arr[0], arr[k-1] = arr[k-1], arr[0]
			}
		}
	}
	if n == 0 {
		return []Perm{{vec: []int{}}}
	}
	generate(n)
	return out
}
