package integer_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decint/control"
	"github.com/calebcase/decint/integer"
)

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema integer.Schema
		data   []byte
	}

	signed := integer.Schema{Signed: true}

	tcs := []TC{
		{
			name:   "0",
			schema: integer.Schema{},
			data: []byte{
				0b1000_0000,
			},
		},
		{
			name:   "1",
			schema: integer.Schema{},
			data: []byte{
				0b1000_0001,
			},
		},
		{
			name:   "200",
			schema: integer.Schema{},
			data: []byte{
				0b0100_0000,
				0b1100_1000,
			},
		},
		{
			name:   "+0",
			schema: signed,
			data: []byte{
				0b1000_0000,
			},
		},
		{
			name:   "+1",
			schema: signed,
			data: []byte{
				0b1000_0010,
			},
		},
		{
			name:   "-1",
			schema: signed,
			data: []byte{
				0b1000_0011,
			},
		},
		{
			name:   "-63",
			schema: signed,
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name:   "+63",
			schema: signed,
			data: []byte{
				0b1111_1110,
			},
		},
		{
			name:   "+4095",
			schema: signed,
			data: []byte{
				0b0011_1111,
				0b1111_1110,
			},
		},
		{
			name:   "-524287",
			schema: signed,
			data: []byte{
				0b0001_1111,
				0b1111_1111,
				0b1111_1111,
			},
		},
		{
			// -(2^503 - 1)
			name:   "-26187124863169134960105517574620793217733136368344518315866330944769070371237396439066160738607233257207093473020480568073738052367083144426628220715007",
			schema: signed,
			data:   append([]byte{0b0111_1110}, bytes.Repeat([]byte{0b1111_1111}, 63)...),
		},
		{
			// 10^200 needs 665 bits, which no longer fits a sized block.
			name:   "1" + strings.Repeat("0", 200),
			schema: integer.Schema{},
			data: append(
				[]byte{0b0000_1000, 0b0101_0011},
				new(big.Int).Exp(big.NewInt(10), big.NewInt(200), nil).Bytes()...,
			),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := integer.MustParse(tc.name)
			buf := bytes.NewBuffer(nil)

			t.Run("encode", func(t *testing.T) {
				enc := integer.NewEncoder(tc.schema, control.NewEncoder(buf))
				err := enc.Encode(integer.NullInteger{Integer: x, Valid: true})
				require.NoError(t, err)
				require.Equal(t, tc.data, buf.Bytes())
			})

			t.Run("decode", func(t *testing.T) {
				dec := integer.NewDecoder(tc.schema, control.NewDecoder(buf))

				var n integer.NullInteger
				err := dec.Decode(&n)
				require.NoError(t, err)
				require.True(t, n.Valid)
				require.Equal(t, x, n.Integer)

				// These checks ensure that our test case name matches the value.
				ref := new(big.Int)
				err = ref.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, ref.String(), n.Integer.String())

				err = dec.Decode(&n)
				require.Equal(t, io.EOF, err)
			})
		})
	}
}

func TestEncodeDecodeStream(t *testing.T) {
	schema := integer.Schema{
		Signed:   true,
		Nullable: true,
	}

	values := []integer.NullInteger{
		{Integer: integer.New(-1), Valid: true},
		{},
		{Integer: integer.MustParse("123456789012345678901234567890"), Valid: true},
		{Integer: integer.Zero, Valid: true},
		{},
		{Integer: integer.MustParse("-" + strings.Repeat("9", 300)), Valid: true},
	}

	buf := bytes.NewBuffer(nil)
	enc := integer.NewEncoder(schema, control.NewEncoder(buf))

	for _, v := range values {
		require.NoError(t, enc.Encode(v))
	}

	dec := integer.NewDecoder(schema, control.NewDecoder(buf))

	var got []integer.NullInteger
	for {
		var n integer.NullInteger

		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		got = append(got, n)
	}

	t.Logf("got: %s", spew.Sdump(got))
	require.Equal(t, values, got)
}

func TestEncodeErrors(t *testing.T) {
	t.Run("null in non-nullable field", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		enc := integer.NewEncoder(integer.Schema{Signed: true}, control.NewEncoder(buf))

		err := enc.Encode(integer.NullInteger{})
		require.Error(t, err)
		require.True(t, integer.Error.Has(err))
		require.Zero(t, buf.Len())
	})

	t.Run("negative in unsigned field", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		enc := integer.NewEncoder(integer.Schema{}, control.NewEncoder(buf))

		err := enc.Encode(integer.NullInteger{Integer: integer.New(-5), Valid: true})
		require.Error(t, err)
		require.True(t, errors.Is(err, integer.ErrRange))
		require.True(t, integer.Error.Has(err))
		require.Zero(t, buf.Len())
	})
}

func TestDecodeErrors(t *testing.T) {
	t.Run("null in non-nullable field", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0000})))

		var n integer.NullInteger
		err := dec.Decode(&n)
		require.Error(t, err)
		require.True(t, integer.Error.Has(err))
	})

	t.Run("null in nullable field", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{Nullable: true}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0000})))

		n := integer.NullInteger{Integer: integer.New(3), Valid: true}
		require.NoError(t, dec.Decode(&n))
		require.False(t, n.Valid)
		require.Equal(t, integer.Zero, n.Integer)
	})

	t.Run("empty block", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0001})))

		var n integer.NullInteger
		err := dec.Decode(&n)
		require.Error(t, err)
		require.True(t, integer.Error.Has(err))
	})

	t.Run("truncated", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0100_0011, 0x01})))

		var n integer.NullInteger
		err := dec.Decode(&n)
		require.Error(t, err)
		require.True(t, integer.Error.Has(err))
		require.True(t, control.Error.Has(err))
	})

	t.Run("declared size larger than stream", func(t *testing.T) {
		input := []byte{
			0b0000_1111,
			0b0111_1111, 0b1111_1111, 0b1111_1111, 0b1111_1111,
			0b1111_1111, 0b1111_1111, 0b1111_1111, 0b1111_1110,
		}

		for _, schema := range []integer.Schema{{}, {Signed: true}} {
			dec := integer.NewDecoder(schema, control.NewDecoder(bytes.NewBuffer(input)))

			var n integer.NullInteger
			require.NotPanics(t, func() {
				err := dec.Decode(&n)
				require.Error(t, err)
				require.ErrorIs(t, err, io.ErrUnexpectedEOF)
				require.True(t, integer.Error.Has(err))
			})
			require.False(t, n.Valid)
		}
	})

	t.Run("unexpected byte", func(t *testing.T) {
		dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0101})))

		var n integer.NullInteger
		err := dec.Decode(&n)
		require.Error(t, err)
		require.NotEqual(t, io.EOF, err)
		require.True(t, integer.Error.Has(err))
	})
}

func BenchmarkEncode(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	ce := control.NewEncoder(buf)

	schema := integer.Schema{
		Signed: true,
	}
	enc := integer.NewEncoder(schema, ce)

	x := integer.NullInteger{
		Integer: integer.New(-524287),
		Valid:   true,
	}

	for n := 0; n < b.N; n++ {
		err := enc.Encode(x)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{
		0b0001_1111,
		0b1111_1111,
		0b1111_1111,
	}

	var x integer.NullInteger

	for n := 0; n < b.N; n++ {
		buf := bytes.NewBuffer(data)
		cd := control.NewDecoder(buf)

		schema := integer.Schema{
			Signed: true,
		}
		dec := integer.NewDecoder(schema, cd)

		err := dec.Decode(&x)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkMul(b *testing.B) {
	x := integer.MustParse(strings.Repeat("123456789", 20))
	y := integer.MustParse("-" + strings.Repeat("987654321", 20))

	for n := 0; n < b.N; n++ {
		_ = x.Mul(y)
	}
}
