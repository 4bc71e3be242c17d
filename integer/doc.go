// Package integer provides an arbitrary-precision signed integer held as a
// sign and a sequence of decimal digits.
//
// Integers are built from native values with New or from decimal text with
// Parse, and combined with Add, Sub and Mul. Results grow as needed so no
// operation can overflow. Division is not provided.
//
//	x := integer.New(math.MaxInt64)
//	y := integer.MustParse("10")
//	fmt.Println(x.Mul(y)) // 92233720368547758070
//
// Canonical Form
//
// Every integer has exactly one representation: the magnitude has no leading
// zeros and zero is never negative. Because of this, == compares values and
// String renders the canonical form, which Parse reads back:
//
//	integer.MustParse("-000") == integer.Zero // true
//	integer.MustParse("+007").String()       // "7"
//
// Arithmetic
//
// Magnitudes are combined digit by digit from the least significant end, the
// way long arithmetic is done by hand: carries for addition, borrows for
// subtraction and one shifted partial product per digit for multiplication.
// Multiplication is O(n*m) in the number of digits.
//
// Encoding
//
// Integers implement the text, JSON and binary marshaling interfaces,
// fmt.Formatter, sql.Scanner and driver.Valuer. The binary form is the
// magnitude big-endian with the sign in the trailing bit:
//
//	+0   = 0000_0000
//	+1   = 0000_0010
//	-1   = 0000_0011
//	+127 = 1111_1110
//	-127 = 1111_1111
//
// Encoder and Decoder frame that form in BSV control blocks (see package
// control), choosing the smallest block for each value.
package integer
