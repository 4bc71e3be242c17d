package integer

import (
	"fmt"
	"io"

	"github.com/calebcase/decint/control"
)

// Schema for an integer field in a BSV stream.
type Schema struct {
	// Signed integers carry the sign in the trailing bit (see
	// Integer.MarshalBinary). Unsigned integers are the bare magnitude and
	// reject negative values.
	Signed bool

	// Nullable fields may hold a Null block.
	Nullable bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer from the stream. It returns io.EOF when the
// stream has no more blocks.
func (d *Decoder) Decode(x *NullInteger) (err error) {
	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return Error.Wrap(err)
		}

		return io.EOF
	}

	defer Error.WrapP(&err)

	t := d.cd.Type()

	switch {
	case t == control.Null:
		if !d.schema.Nullable {
			return Error.New("null in non-nullable field")
		}

		*x = NullInteger{}

		return nil
	case !t.IsData():
		return Error.New("unexpected block: %s", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	var v Integer
	if d.schema.Signed {
		err = v.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	} else {
		v = newInteger(false, bytesToDigits(data))
	}

	*x = NullInteger{
		Integer: v,
		Valid:   true,
	}

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes an integer to the stream using the smallest control block
// that holds it.
func (e *Encoder) Encode(x NullInteger) (err error) {
	defer Error.WrapP(&err)

	if !x.Valid {
		if !e.schema.Nullable {
			return Error.New("null in non-nullable field")
		}

		return e.ce.Null()
	}

	var data []byte

	switch {
	case e.schema.Signed:
		data, err = x.Integer.MarshalBinary()
		if err != nil {
			return err
		}
	case x.Integer.IsNeg():
		return fmt.Errorf("%w: %s in unsigned field", ErrRange, x.Integer)
	default:
		data = digitsToBytes(x.Integer.digits())
	}

	return e.ce.Data(data)
}
