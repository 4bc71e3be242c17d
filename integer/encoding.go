package integer

import (
	"bytes"
	"database/sql/driver"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// MarshalText implements encoding.TextMarshaler. The text is the canonical
// form returned by String.
func (x Integer) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. See Parse.
func (x *Integer) UnmarshalText(text []byte) (err error) {
	*x, err = Parse(string(text))
	return err
}

// MarshalJSON implements json.Marshaler. Integers are written as JSON
// numbers of any length.
func (x Integer) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON number without
// fraction or exponent, or a JSON string holding decimal text. A JSON null
// leaves x unchanged.
func (x *Integer) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Error.New("invalid json: empty")
	}

	switch c := data[0]; {
	case c == '-' || ('0' <= c && c <= '9'):
		// Number literals go straight to Parse, which rejects fractions
		// and exponents.
		return x.UnmarshalText(data)
	case c == '"':
		var s string

		err = jsoniter.ConfigFastest.Unmarshal(data, &s)
		if err != nil {
			return err
		}

		return x.UnmarshalText([]byte(s))
	case string(data) == "null":
		return nil
	case !jsoniter.ConfigFastest.Valid(data):
		return Error.New("invalid json: %q", data)
	}

	return Error.New("not an integer: %s", data)
}

// MarshalBinary implements encoding.BinaryMarshaler. The value is written
// big-endian with the sign in the trailing bit:
//
//	data = |x| << 1 | (1 if x < 0)
//
// Zero is a single zero byte.
func (x Integer) MarshalBinary() (data []byte, err error) {
	d := x.digits()

	z := add(d, d)
	if x.neg {
		z = add(z, digits{1})
	}

	return digitsToBytes(z), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. See MarshalBinary.
func (x *Integer) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty binary integer")
	}

	q, r := divSmall(bytesToDigits(data), 2)

	*x = newInteger(r == 1, q)

	return nil
}

// bytesToDigits interprets b as a big-endian unsigned number.
func bytesToDigits(b []byte) digits {
	z := zeroDigits
	for _, v := range b {
		z = add(mulSmall(z, 256), uint64Digits(uint64(v)))
	}

	return z
}

// digitsToBytes returns d big-endian without leading zero bytes. Zero is a
// single zero byte.
func digitsToBytes(d digits) []byte {
	if d.isZero() {
		return []byte{0}
	}

	var b []byte
	for !d.isZero() {
		var r uint

		d, r = divSmall(d, 256)
		b = append(b, byte(r))
	}

	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

// Format implements fmt.Formatter. The following verbs are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// The '+' and ' ' flags force a sign on non-negative values. A width pads
// with spaces on the left, or on the right with the '-' flag, or with zeros
// after the sign with the '0' flag.
func (x Integer) Format(state fmt.State, verb rune) {
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	quote := ""
	if verb == 'q' {
		quote = `"`
	}

	body := x.Digits()

	width := len(quote) + len(sign) + len(body) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && quote == "":
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	buf := make([]byte, 0, width+lspaces+tspaces+lzeroes)
	buf = appendRepeat(buf, ' ', lspaces)
	buf = append(buf, quote...)
	buf = append(buf, sign...)
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, body...)
	buf = append(buf, quote...)
	buf = appendRepeat(buf, ' ', tspaces)

	switch verb {
	case 'd', 's', 'v', 'q':
		_, _ = state.Write(buf)
	default:
		fmt.Fprintf(state, "%%!%c(integer.Integer=%s)", verb, x.String())
	}
}

func appendRepeat(b []byte, c byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, c)
	}

	return b
}

// Scan implements sql.Scanner. It accepts decimal text as a string or byte
// slice, and int64 values.
func (x *Integer) Scan(src interface{}) (err error) {
	switch v := src.(type) {
	case string:
		return x.UnmarshalText([]byte(v))
	case []byte:
		return x.UnmarshalText(v)
	case int64:
		*x = New(v)
		return nil
	case nil:
		return Error.New("cannot scan NULL into Integer")
	}

	return Error.New("cannot scan %T into Integer", src)
}

// Value implements driver.Valuer. Integers are stored as decimal text so any
// length survives the round trip.
func (x Integer) Value() (driver.Value, error) {
	return x.String(), nil
}

// NullInteger is an Integer that may be null. Valid is false for null.
type NullInteger struct {
	Integer Integer
	Valid   bool
}

// Scan implements sql.Scanner.
func (n *NullInteger) Scan(src interface{}) (err error) {
	if src == nil {
		*n = NullInteger{}
		return nil
	}

	err = n.Integer.Scan(src)
	if err != nil {
		return err
	}

	n.Valid = true

	return nil
}

// Value implements driver.Valuer.
func (n NullInteger) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.Integer.Value()
}

// String returns the integer's canonical form, or "null".
func (n NullInteger) String() string {
	if !n.Valid {
		return "null"
	}

	return n.Integer.String()
}
