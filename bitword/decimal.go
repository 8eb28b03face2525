package bitword

import (
	"fmt"
	"math/big"
)

// ParseDecimal parses a base-10 string into a Word, for the graph-file
// format (one decimal bitword per line). No third-party big-integer
// library is available, so this one conversion is built on the standard
// library's math/big rather than an ecosystem dependency — the value only
// ever needs a decimal string in and out, which math/big.Int.SetString/Text
// cover directly.
func ParseDecimal(s string) (Word, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fmt.Errorf("bitword: not a decimal integer: %q", s)
	}
	if n.Sign() < 0 {
		return Zero, fmt.Errorf("bitword: negative bitword: %q", s)
	}
	if n.BitLen() > 128 {
		return Zero, fmt.Errorf("bitword: value exceeds 128 bits: %q", s)
	}
	var mask, hi big.Int
	mask.SetUint64(^uint64(0))
	var lo big.Int
	lo.And(n, &mask)
	hi.Rsh(n, 64)
	hi.And(&hi, &mask)
	return Word{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// Decimal renders w as a base-10 string.
func (w Word) Decimal() string {
	var n, hi big.Int
	hi.SetUint64(w.Hi)
	n.Lsh(&hi, 64)
	var lo big.Int
	lo.SetUint64(w.Lo)
	n.Or(&n, &lo)
	return n.Text(10)
}
