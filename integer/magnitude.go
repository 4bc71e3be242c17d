package integer

// The functions below implement long arithmetic on canonical magnitudes. They
// never modify their operands and always return canonical digits.

// cmp compares the magnitudes a and b and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
func cmp(a, b digits) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// add returns a + b.
func add(a, b digits) digits {
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	n++

	// Walk from the least significant digit, leaving z[0] for the carry.
	z := make(digits, n)

	var carry byte
	for i := 1; i <= n; i++ {
		s := carry
		if i <= len(a) {
			s += a[len(a)-i]
		}
		if i <= len(b) {
			s += b[len(b)-i]
		}

		z[n-i] = s % 10
		carry = s / 10
	}

	return z.trim()
}

// sub returns a - b. It panics if a < b.
func sub(a, b digits) digits {
	if cmp(a, b) < 0 {
		panic("integer: magnitude underflow")
	}
	if b.isZero() {
		return a
	}

	z := make(digits, len(a))

	var borrow byte
	for i := 1; i <= len(a); i++ {
		d := a[len(a)-i] + 10 - borrow
		if i <= len(b) {
			d -= b[len(b)-i]
		}

		borrow = 1
		if d >= 10 {
			d -= 10
			borrow = 0
		}

		z[len(a)-i] = d
	}

	return z.trim()
}

// mul returns a * b using schoolbook multiplication: one shifted partial
// product per digit of b, accumulated with add.
func mul(a, b digits) digits {
	if a.isZero() || b.isZero() {
		return zeroDigits
	}

	z := zeroDigits
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == 0 {
			continue
		}

		z = add(z, mulDigit(a, b[i], len(b)-1-i))
	}

	return z
}

// mulDigit returns a * d * 10^shift for a single digit d.
func mulDigit(a digits, d byte, shift int) digits {
	z := make(digits, len(a)+1+shift)

	var carry byte
	for i := len(a) - 1; i >= 0; i-- {
		p := a[i]*d + carry

		z[i+1] = p % 10
		carry = p / 10
	}
	z[0] = carry

	return z.trim()
}

// mulSmall returns a * k.
func mulSmall(a digits, k uint) digits {
	if k == 0 || a.isZero() {
		return zeroDigits
	}

	z := make(digits, len(a)+20)

	var carry uint
	i := len(z) - 1
	for j := len(a) - 1; j >= 0; j-- {
		p := uint(a[j])*k + carry

		z[i] = byte(p % 10)
		carry = p / 10
		i--
	}
	for carry > 0 {
		z[i] = byte(carry % 10)
		carry /= 10
		i--
	}

	return z.trim()
}

// divSmall returns the quotient and remainder of a / k. It panics if k is
// zero.
func divSmall(a digits, k uint) (q digits, r uint) {
	if k == 0 {
		panic("integer: division by zero")
	}

	q = make(digits, len(a))
	for i, v := range a {
		r = r*10 + uint(v)
		q[i] = byte(r / k)
		r %= k
	}

	return q.trim(), r
}
