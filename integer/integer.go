package integer

import (
	"math"

	"github.com/zeebo/xxh3"
)

// Integer is an arbitrary-precision signed integer. It is an immutable value:
// operations return new integers and never modify their operands.
//
// The zero value is 0. Integers are comparable with == and can be used as map
// keys; two integers are == exactly when they denote the same number,
// regardless of how they were built.
type Integer struct {
	neg bool

	// mag is the canonical magnitude as ASCII digits. Zero is stored as
	// the empty string so that the zero value is canonical.
	mag string
}

var (
	// Zero is the integer 0.
	Zero = Integer{}

	// One is the integer 1.
	One = New(1)
)

// newInteger builds a canonical integer. Zero is always non-negative.
func newInteger(neg bool, d digits) Integer {
	d = d.trim()
	if d.isZero() {
		return Zero
	}

	return Integer{
		neg: neg,
		mag: d.String(),
	}
}

// New returns the integer equal to n.
func New(n int64) Integer {
	u := uint64(n)
	if n < 0 {
		// Two's complement negation also covers math.MinInt64.
		u = -u
	}

	return newInteger(n < 0, uint64Digits(u))
}

func (x Integer) digits() digits {
	return textDigits(x.mag)
}

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	a, b := x.digits(), y.digits()

	if x.neg == y.neg {
		return newInteger(x.neg, add(a, b))
	}

	switch cmp(a, b) {
	case 1:
		return newInteger(x.neg, sub(a, b))
	case -1:
		return newInteger(y.neg, sub(b, a))
	}

	return Zero
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	return newInteger(x.neg != y.neg, mul(x.digits(), y.digits()))
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	if x.IsZero() {
		return Zero
	}

	return Integer{
		neg: !x.neg,
		mag: x.mag,
	}
}

// Abs returns |x|.
func (x Integer) Abs() Integer {
	return Integer{
		mag: x.mag,
	}
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Integer) Cmp(y Integer) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}

	c := cmp(x.digits(), y.digits())
	if x.neg {
		return -c
	}

	return c
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Integer) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	}

	return 1
}

// IsZero returns true if x is 0.
func (x Integer) IsZero() bool {
	return x.mag == ""
}

// IsNeg returns true if x < 0.
func (x Integer) IsNeg() bool {
	return x.neg
}

// IsPos returns true if x > 0.
func (x Integer) IsPos() bool {
	return !x.neg && !x.IsZero()
}

// Equal returns true if x and y denote the same number. It is the same as
// x == y.
func (x Integer) Equal(y Integer) bool {
	return x == y
}

// Hash returns a hash of x consistent with Equal.
func (x Integer) Hash() uint64 {
	return xxh3.HashString(x.String())
}

// Digits returns the decimal digits of |x| without a sign.
func (x Integer) Digits() string {
	if x.IsZero() {
		return "0"
	}

	return x.mag
}

// String returns the canonical decimal form of x: a '-' for negative values
// followed by the digits, with no leading zeros.
func (x Integer) String() string {
	if x.neg {
		return "-" + x.mag
	}

	return x.Digits()
}

// Int64 returns x as an int64. The boolean is false if x does not fit.
func (x Integer) Int64() (int64, bool) {
	// math.MaxUint64 has 20 digits, so 19 never overflow the accumulator.
	if len(x.mag) > 19 {
		return 0, false
	}

	var u uint64
	for i := 0; i < len(x.mag); i++ {
		u = u*10 + uint64(x.mag[i]-'0')
	}

	if x.neg {
		if u > uint64(math.MaxInt64)+1 {
			return 0, false
		}

		return int64(-u), true
	}

	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}
