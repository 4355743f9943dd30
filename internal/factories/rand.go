package factories

// Rand is the random source order generation draws from. *rand.Rand
// satisfies it; tests script it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
