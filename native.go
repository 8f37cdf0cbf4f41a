package catcalc

// Native is the real Arithmetic: plain IEEE-754 float64 operations.
// Division by zero yields ±Inf or NaN rather than an error.
type Native struct{}

// NewNative returns the real arithmetic implementation as an Arithmetic.
func NewNative() Arithmetic {
	return Native{}
}

// Add returns a + b.
func (Native) Add(a, b float64) float64 {
	return a + b
}

// Divide returns a / b.
func (Native) Divide(a, b float64) float64 {
	return a / b
}

// Multiply returns a * b.
func (Native) Multiply(a, b float64) float64 {
	return a * b
}

// Subtract returns a - b.
func (Native) Subtract(a, b float64) float64 {
	return a - b
}

// compile-time interface checks.
var (
	_ Arithmetic = Native{}
	_ Service    = (*Calculator)(nil)
)
