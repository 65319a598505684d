// Package random implements a seedable random engine with NumPy RandomState streams:
// a Mersenne Twister core plus the legacy uniform, normal, bounded-integer, gamma and
// beta samplers.
package random

const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// mt19937 is the 32-bit Mersenne Twister.
type mt19937 struct {
	mt  [mtN]uint32
	mti int
}

// seed initializes the state like init_genrand (and numpy.random.RandomState(seed)).
func (m *mt19937) seed(s uint32) {
	m.mt[0] = s
	for i := 1; i < mtN; i++ {
		m.mt[i] = 1812433253*(m.mt[i-1]^(m.mt[i-1]>>30)) + uint32(i) //nolint:gosec // G115: i < 624.
	}
	m.mti = mtN
}

func (m *mt19937) generate() {
	mag01 := [2]uint32{0, matrixA}
	var y uint32
	kk := 0
	for ; kk < mtN-mtM; kk++ {
		y = (m.mt[kk] & upperMask) | (m.mt[kk+1] & lowerMask)
		m.mt[kk] = m.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (m.mt[kk] & upperMask) | (m.mt[kk+1] & lowerMask)
		m.mt[kk] = m.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (m.mt[mtN-1] & upperMask) | (m.mt[0] & lowerMask)
	m.mt[mtN-1] = m.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	m.mti = 0
}

// uint32 returns the next tempered 32-bit output.
func (m *mt19937) uint32() uint32 {
	if m.mti >= mtN {
		m.generate()
	}
	y := m.mt[m.mti]
	m.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// uint64 joins two 32-bit outputs, high word first.
func (m *mt19937) uint64() uint64 {
	hi := uint64(m.uint32())
	return hi<<32 | uint64(m.uint32())
}

// float64 returns a double in [0, 1) with 53 random bits.
func (m *mt19937) float64() float64 {
	a := m.uint32() >> 5
	b := m.uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// float32 returns a float in [0, 1) with 24 random bits.
func (m *mt19937) float32() float32 {
	return float32(m.uint32()>>8) * (1.0 / 16777216.0)
}
