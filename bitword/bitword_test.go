package bitword_test

import (
	"testing"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRawIndexRevIndexRoundTrip checks (a,b) -> i -> (a,b) round tripping
// over a range of small graphs.
func TestRawIndexRevIndexRoundTrip(t *testing.T) {
	for b := 1; b < 40; b++ {
		for a := 0; a < b; a++ {
			i := bitword.RawIndex(a, b)
			a2, b2 := bitword.RevIndex(i)
			assert.Equal(t, a, a2, "a mismatch at (%d,%d)", a, b)
			assert.Equal(t, b, b2, "b mismatch at (%d,%d)", a, b)
		}
	}
}

func TestRevIndexAtSix(t *testing.T) {
	// raw_index(0,4) = 4*3/2+0 = 6, so rev_index(6) must invert to (0,4).
	a, b := bitword.RevIndex(6)
	require.Equal(t, 0, a)
	require.Equal(t, 4, b)
}

func TestHiBitIx(t *testing.T) {
	w := bitword.One(2).Or(bitword.One(5)).Or(bitword.One(6))
	assert.Equal(t, 6, bitword.HiBitIx(w))
}

func TestSmoosh(t *testing.T) {
	// Values hand-traced through the algorithm: row = 0b110010, breaks varying.
	row := bitword.One(1).Or(bitword.One(4)).Or(bitword.One(5)) // 0b110010
	cases := []struct {
		breaks bitword.Word
		want   bitword.Word
	}{
		{bitword.Zero, bitword.Low(3)},                                 // 0b111
		{bitword.One(1), bitword.One(0).Or(bitword.One(2)).Or(bitword.One(3))}, // 0b1101
		{bitword.One(1).Or(bitword.One(2)), bitword.One(0).Or(bitword.One(3)).Or(bitword.One(4))}, // 0b11001
	}
	for _, c := range cases {
		got := bitword.Smoosh(row, c.breaks)
		assert.True(t, c.want.Equal(got), "smoosh(%v,%v) = %v, want %v", row, c.breaks, got, c.want)
	}

	// row = 0b101010, breaks = 0b1010 -> 0b10101
	row4 := bitword.One(1).Or(bitword.One(3)).Or(bitword.One(5))
	breaks4 := bitword.One(1).Or(bitword.One(3))
	want4 := bitword.One(0).Or(bitword.One(2)).Or(bitword.One(4))
	got4 := bitword.Smoosh(row4, breaks4)
	assert.True(t, want4.Equal(got4), "smoosh(%v,%v) = %v, want %v", row4, breaks4, got4, want4)
}

func TestSmooshIdempotent(t *testing.T) {
	row := bitword.One(1).Or(bitword.One(3)).Or(bitword.One(5))
	breaks := bitword.One(1).Or(bitword.One(3))
	once := bitword.Smoosh(row, breaks)
	twice := bitword.Smoosh(once, breaks)
	assert.True(t, once.Equal(twice))
}

func TestGetBreaks(t *testing.T) {
	// GetBreaks(w) has a 1 at i whenever bit i is clear and bit i+1 is set.
	// w has bits {0,1,3} set: only i=2 (bit2=0, bit3=1) qualifies.
	w := bitword.One(0).Or(bitword.One(1)).Or(bitword.One(3))
	breaks := bitword.GetBreaks(w)
	assert.True(t, breaks.Bit(2))
	assert.False(t, breaks.Bit(0))
	assert.False(t, breaks.Bit(1))
	assert.False(t, breaks.Bit(3))
}

func TestShowBits(t *testing.T) {
	assert.Equal(t, "0", bitword.ShowBits(bitword.Zero))
	w := bitword.One(0).Or(bitword.One(2)).Or(bitword.One(5)).Or(bitword.One(6))
	assert.Equal(t, "1_100_10_1", bitword.ShowBits(w))
}

func TestParseDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "100", "340282366920938463463374607431768211455"}
	for _, s := range cases {
		w, err := bitword.ParseDecimal(s)
		require.NoError(t, err)
		assert.Equal(t, s, w.Decimal())
	}
}

func TestParseDecimalRejectsOverflow(t *testing.T) {
	_, err := bitword.ParseDecimal("340282366920938463463374607431768211456")
	assert.Error(t, err)
}

func TestParseDecimalRejectsNegative(t *testing.T) {
	_, err := bitword.ParseDecimal("-1")
	assert.Error(t, err)
}

func TestLowAndLen(t *testing.T) {
	assert.True(t, bitword.Low(0).IsZero())
	assert.Equal(t, 128, bitword.Low(128).Popcount())
	assert.Equal(t, 3, bitword.Low(3).Popcount())
}

func TestShlShrRoundTrip(t *testing.T) {
	w := bitword.One(5).Or(bitword.One(70))
	assert.True(t, w.Shl(10).Shr(10).Equal(w))
}

// TestEdgeVecsMatchesBruteForce independently re-derives the per-vertex
// incidence mask and checks it against the cached EdgeVecs table.
func TestEdgeVecsMatchesBruteForce(t *testing.T) {
	table := bitword.EdgeVecs()
	for v := 0; v < 16; v++ {
		var want bitword.Word
		for i := 0; i < 16; i++ {
			if i == v {
				continue
			}
			want = want.SetBit(bitword.Index(v, i))
		}
		assert.True(t, want.Equal(table[v]), "EdgeVecs()[%d] mismatch", v)
	}
}

func TestInferSize(t *testing.T) {
	// Highest edge bit at RawIndex(0,4)=6 implies order 5.
	w := bitword.One(6)
	assert.Equal(t, 5, bitword.InferSize(w))
	assert.Equal(t, 1, bitword.InferSize(bitword.Zero))
}
