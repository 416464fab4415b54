package gamemath

// Source is the randomness the simulation consumes. *rand.Rand satisfies it;
// tests substitute scripted sequences for reproducible spawn placement.
type Source interface {
	Float64() float64
	Intn(n int) int
}
