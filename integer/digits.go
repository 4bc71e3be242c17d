package integer

// digits is a magnitude held as decimal digit values (0-9), most significant
// first. A canonical sequence is never empty and has no leading zero unless it
// is exactly the single digit 0.
type digits []byte

var zeroDigits = digits{0}

func (d digits) isZero() bool {
	return len(d) == 1 && d[0] == 0
}

// trim returns d without leading zeros.
func (d digits) trim() digits {
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}

	if i == len(d) {
		return zeroDigits
	}

	return d[i:]
}

// uint64Digits decomposes n into its decimal digits.
func uint64Digits(n uint64) digits {
	if n == 0 {
		return zeroDigits
	}

	var buf [20]byte

	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n % 10)
		n /= 10
	}

	return append(digits(nil), buf[i:]...)
}

// textDigits converts canonical ASCII digits. The empty string is zero.
func textDigits(s string) digits {
	if s == "" {
		return zeroDigits
	}

	d := make(digits, len(s))
	for i := 0; i < len(s); i++ {
		d[i] = s[i] - '0'
	}

	return d
}

// String renders the digits as ASCII text.
func (d digits) String() string {
	b := make([]byte, len(d))
	for i, v := range d {
		b[i] = '0' + v
	}

	return string(b)
}
