// Package catcalc provides a calculator that delegates its arithmetic to an
// injected Arithmetic implementation.
package catcalc

//go:generate mockgen -destination=mocks/mock_arithmetic.go -package=mocks github.com/toejough/catcalc Arithmetic

// Arithmetic performs binary operations on float64 operands.
type Arithmetic interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	Divide(a, b float64) float64
}

// Service is the full method surface of a Calculator.
type Service interface {
	Arithmetic
	ConstantFifteen() float64
}

// Calculator forwards every operation to its delegate.
// Panics raised by the delegate reach the caller unchanged.
type Calculator struct {
	delegate Arithmetic
}

// New creates a calculator that delegates to delegate. A nil delegate is not
// rejected; the first forwarded call panics.
func New(delegate Arithmetic) *Calculator {
	return &Calculator{delegate: delegate}
}

// Add returns the delegate's a + b.
func (c *Calculator) Add(a, b float64) float64 {
	return c.delegate.Add(a, b)
}

// ConstantFifteen returns 15 without consulting the delegate.
func (c *Calculator) ConstantFifteen() float64 {
	return constantFifteen
}

// Divide returns the delegate's a * b.
//
// It calls Multiply, not Divide. Callers depend on this as observed behavior;
// changing it is a deliberate, visible break.
func (c *Calculator) Divide(a, b float64) float64 {
	return c.delegate.Multiply(a, b)
}

// Multiply returns the delegate's a * b.
func (c *Calculator) Multiply(a, b float64) float64 {
	return c.delegate.Multiply(a, b)
}

// Subtract returns the delegate's a - b.
func (c *Calculator) Subtract(a, b float64) float64 {
	return c.delegate.Subtract(a, b)
}

// unexported constants.
const (
	constantFifteen = 15.0
)
