package integer

import (
	"fmt"
	"strings"
)

// Parse converts decimal text to an integer. The text must be an optional
// '+' or '-' sign followed by one or more ASCII digits:
//
//	sign    ::= '+' | '-'
//	digit   ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	integer ::= [sign] digit { digit }
//
// Leading zeros are accepted and dropped, and every spelling of zero ("0",
// "-0", "+000") yields the same value. There is no length limit.
//
// Failures wrap a *ParseError whose cause is ErrInvalidFormat.
func Parse(s string) (x Integer, err error) {
	neg, d, err := parseDigits(s)
	if err != nil {
		return Zero, Error.Wrap(err)
	}

	return newInteger(neg, d), nil
}

// MustParse is like Parse but panics if the text cannot be parsed. It
// simplifies safe initialization of global variables holding integers.
func MustParse(s string) Integer {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return x
}

// parseDigits scans s once from left to right, splitting off the sign and
// dropping leading zeros as it goes.
func parseDigits(s string) (neg bool, d digits, err error) {
	if strings.TrimSpace(s) == "" {
		return false, nil, &ParseError{
			Text:   s,
			Reason: "should not be blank",
		}
	}

	body := s
	switch s[0] {
	case '+':
		body = s[1:]
	case '-':
		neg = true
		body = s[1:]
	}

	if body == "" {
		return false, nil, notDecimal(s)
	}

	d = make(digits, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return false, nil, notDecimal(s)
		}

		if len(d) == 0 && c == '0' {
			continue
		}

		d = append(d, c-'0')
	}

	if len(d) == 0 {
		return false, zeroDigits, nil
	}

	return neg, d, nil
}

func notDecimal(s string) *ParseError {
	return &ParseError{
		Text: s,
		Reason: fmt.Sprintf(
			"can only contain an optional + or - sign, followed by a sequence of digits, was: %q",
			s,
		),
	}
}
