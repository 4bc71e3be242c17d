package control

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("unsupported: seek of %d bytes", size)
	}

	if d.s != nil {
		_, err := d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// skip moves past the unread data of the current block.
func (d *decoder) skip() (err error) {
	if d.finished || d.t == Unknown {
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	switch d.t {
	case Data1:
		size -= 1
	case Data2:
		size -= 2
	}

	err = d.seek(size)
	if err != nil {
		return err
	}

	d.finished = true

	return nil
}

// Next moves to the next block. It returns false at the end of the stream or
// on error; check Err to tell them apart.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.err = d.skip()
	if d.err != nil {
		return false
	}

	// Reset state for next block.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = d.data[:0]
	d.finished = false

	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block. For Data1 and
// Data2 blocks this includes the bits packed into the control byte.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		var buf [8]byte
		sb := buf[len(buf)-int(sizeSize):]

		_, err = io.ReadFull(d.r, sb)
		if err != nil {
			return 0, Error.Wrap(err)
		}

		d.consumed += sizeSize

		size := binary.BigEndian.Uint64(buf[:])
		if size >= math.MaxInt64 {
			return 0, Error.New("unsupported: size > 2^63-1")
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the block. If the block does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	var n uint64

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case DataSize, DataSizeSize:
		// The size comes from the stream, so the buffer only grows as
		// bytes actually arrive.
		buf := bytes.NewBuffer(nil)

		_, err = io.CopyN(buf, d.r, int64(d.size))
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, Error.Wrap(err)
		}

		d.data = buf.Bytes()
		n = d.size
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, d.data[1:])
		if err != nil {
			return nil, Error.Wrap(err)
		}

		n = d.size - 1
	}

	d.consumed += n
	d.finished = true

	return d.data, nil
}
