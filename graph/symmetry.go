package graph

import "github.com/galenhuntington/ingraphs/perm"

// CountSymmetries counts the automorphisms of g: permutations p such that
// g.Unrenumber(p) == g. The search restricts itself to permutations within
// each degree class (any automorphism must map same-degree vertices to
// same-degree vertices), short-circuiting once it reaches the
// second-highest degree class and folding in the free permutations of the
// isolated (degree 0) and universal (degree n-1) classes at the end.
func (g Graph) CountSymmetries() int {
	n := g.size
	if n <= 2 {
		return factorial(n)
	}
	degs := make([][]int, n)
	for pt := 0; pt < n; pt++ {
		d := g.DegreeOf(pt)
		degs[d] = append(degs[d], pt)
	}

	var step func(deg int, p perm.Perm) int
	step = func(deg int, p perm.Perm) int {
		vec := degs[deg]
		total := 0
		for _, sub := range perm.All(len(vec)) {
			pnVec := make([]int, n)
			for i := range pnVec {
				pnVec[i] = i
			}
			for i, pt := range vec {
				pnVec[pt] = vec[sub.Apply(i)]
			}
			p2 := perm.Compose(p, perm.NewUnsafe(pnVec))
			if deg >= n-2 {
				if g.Unrenumber(p2).Bits().Equal(g.Bits()) {
					total++
				}
			} else {
				total += step(deg+1, p2)
			}
		}
		return total
	}

	base := step(1, perm.Identity(n))
	return base * factorial(len(degs[0])) * factorial(len(degs[n-1]))
}

func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}
