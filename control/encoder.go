package control

import (
	"encoding/binary"
	"io"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

// Data writes data using the smallest block able to hold it. Single bytes
// that fit under a block's mask are packed into the control byte itself.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		err = e.write([]byte{
			DataSize.Prefix | byte(size-1),
		})
		if err != nil {
			return err
		}

		return e.write(data)
	}

	sb := sizeBytes(uint64(size - 1))

	err = e.write([]byte{
		DataSizeSize.Prefix | byte(len(sb)-1),
	})
	if err != nil {
		return err
	}

	err = e.write(sb)
	if err != nil {
		return err
	}

	return e.write(data)
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{
		Empty.Prefix,
	})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{
		Null.Prefix,
	})
}

func (e *encoder) write(p []byte) (err error) {
	_, err = e.w.Write(p)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// sizeBytes returns n big-endian without leading zero bytes. Zero is a single
// zero byte.
func sizeBytes(n uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)

	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}

	return buf[i:]
}
