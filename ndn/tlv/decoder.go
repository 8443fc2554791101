/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
)

// Decoder maintains a cursor over a read-only input buffer and decodes TLV
// elements from it. Peeking operations do not advance the cursor; reading
// operations do. Blob reads return slices of the input buffer, so the buffer
// must outlive any values the caller keeps.
type Decoder struct {
	input  []byte
	offset int
}

// NewDecoder creates a new Decoder over the specified input buffer.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{input: input}
}

// Offset returns the cursor position in the input buffer.
func (d *Decoder) Offset() int {
	return d.offset
}

// Seek moves the cursor to the specified position.
func (d *Decoder) Seek(offset int) {
	d.offset = offset
}

// readVarNumAt decodes the VAR-NUMBER at the specified position without moving
// the cursor, returning the value and its encoded size.
func (d *Decoder) readVarNumAt(offset int) (uint64, int, error) {
	if offset >= len(d.input) {
		return 0, 0, ErrTruncated
	}

	first := d.input[offset]
	switch {
	case first < 0xFD:
		return uint64(first), 1, nil
	case first == 0xFD:
		if offset+3 > len(d.input) {
			return 0, 0, ErrTruncated
		}
		return uint64(binary.BigEndian.Uint16(d.input[offset+1 : offset+3])), 3, nil
	case first == 0xFE:
		if offset+5 > len(d.input) {
			return 0, 0, ErrTruncated
		}
		return uint64(binary.BigEndian.Uint32(d.input[offset+1 : offset+5])), 5, nil
	default:
		if offset+9 > len(d.input) {
			return 0, 0, ErrTruncated
		}
		return binary.BigEndian.Uint64(d.input[offset+1 : offset+9]), 9, nil
	}
}

// ReadVarNum reads a VAR-NUMBER and advances the cursor past it.
func (d *Decoder) ReadVarNum() (uint64, error) {
	value, size, err := d.readVarNumAt(d.offset)
	if err != nil {
		return 0, err
	}
	d.offset += size
	return value, nil
}

// ReadTypeAndLength reads a TLV header, requiring the specified type, and
// returns the value length. The cursor is left at the first byte of the value.
func (d *Decoder) ReadTypeAndLength(expectedType uint32) (int, error) {
	tlvType, typeSize, err := d.readVarNumAt(d.offset)
	if err != nil {
		return 0, err
	}
	if tlvType != uint64(expectedType) {
		return 0, ErrUnexpectedType
	}
	length, lengthSize, err := d.readVarNumAt(d.offset + typeSize)
	if err != nil {
		return 0, err
	}
	if length > uint64(len(d.input)-(d.offset+typeSize+lengthSize)) {
		return 0, ErrTruncated
	}

	d.offset += typeSize + lengthSize
	return int(length), nil
}

// ReadNestedTlvsStart reads the header of a TLV of the specified type and
// returns the absolute offset of the end of its value. Sub-elements are then
// read up to that offset, and the caller finishes with FinishNestedTlvs.
func (d *Decoder) ReadNestedTlvsStart(expectedType uint32) (int, error) {
	length, err := d.ReadTypeAndLength(expectedType)
	if err != nil {
		return 0, err
	}
	return d.offset + length, nil
}

// FinishNestedTlvs verifies that the cursor landed exactly at endOffset,
// first skipping any unrecognized trailing TLVs that are non-critical.
func (d *Decoder) FinishNestedTlvs(endOffset int) error {
	if d.offset == endOffset {
		return nil
	}
	if d.offset > endOffset {
		return ErrLengthMismatch
	}

	for d.offset < endOffset {
		tlvType, typeSize, err := d.readVarNumAt(d.offset)
		if err != nil {
			return err
		}
		if tlvType <= uint64(^uint32(0)) && IsCritical(uint32(tlvType)) {
			return ErrUnexpectedType
		}
		length, lengthSize, err := d.readVarNumAt(d.offset + typeSize)
		if err != nil {
			return err
		}
		if length > uint64(len(d.input)-(d.offset+typeSize+lengthSize)) {
			return ErrTruncated
		}
		d.offset += typeSize + lengthSize + int(length)
	}

	if d.offset != endOffset {
		return ErrLengthMismatch
	}
	return nil
}

// PeekType returns whether the next TLV has the specified type, without
// advancing the cursor. It returns false if the cursor is at or past bound.
func (d *Decoder) PeekType(expectedType uint32, bound int) (bool, error) {
	if d.offset >= bound {
		return false, nil
	}
	tlvType, _, err := d.readVarNumAt(d.offset)
	if err != nil {
		return false, err
	}
	return tlvType == uint64(expectedType), nil
}

// PeekTypeCode returns the type code of the next TLV without advancing the cursor.
func (d *Decoder) PeekTypeCode() (uint32, error) {
	tlvType, _, err := d.readVarNumAt(d.offset)
	if err != nil {
		return 0, err
	}
	if tlvType > uint64(^uint32(0)) {
		return 0, ErrOverflow
	}
	return uint32(tlvType), nil
}

// ReadBlobTlv reads a TLV of the specified type and returns its value as a
// slice of the input buffer, without copying.
func (d *Decoder) ReadBlobTlv(expectedType uint32) ([]byte, error) {
	length, err := d.ReadTypeAndLength(expectedType)
	if err != nil {
		return nil, err
	}
	value := d.input[d.offset : d.offset+length]
	d.offset += length
	return value, nil
}

// ReadOptionalBlobTlv reads a TLV of the specified type if it is the next
// element before bound, returning nil if it is absent.
func (d *Decoder) ReadOptionalBlobTlv(expectedType uint32, bound int) ([]byte, error) {
	gotExpectedType, err := d.PeekType(expectedType, bound)
	if err != nil {
		return nil, err
	}
	if !gotExpectedType {
		return nil, nil
	}
	return d.ReadBlobTlv(expectedType)
}

// ReadNonNegativeInteger reads a nonNegativeInteger value of the specified
// length in bytes. Only the widths 1, 2, 4, and 8 are accepted.
func (d *Decoder) ReadNonNegativeInteger(length int) (uint64, error) {
	if d.offset+length > len(d.input) {
		return 0, ErrTruncated
	}

	var value uint64
	switch length {
	case 1:
		value = uint64(d.input[d.offset])
	case 2:
		value = uint64(binary.BigEndian.Uint16(d.input[d.offset : d.offset+2]))
	case 4:
		value = uint64(binary.BigEndian.Uint32(d.input[d.offset : d.offset+4]))
	case 8:
		value = binary.BigEndian.Uint64(d.input[d.offset : d.offset+8])
	default:
		return 0, ErrMalformed
	}
	d.offset += length
	return value, nil
}

// ReadNonNegativeIntegerTlv reads a TLV of the specified type whose value is a
// nonNegativeInteger.
func (d *Decoder) ReadNonNegativeIntegerTlv(expectedType uint32) (uint64, error) {
	length, err := d.ReadTypeAndLength(expectedType)
	if err != nil {
		return 0, err
	}
	return d.ReadNonNegativeInteger(length)
}

// ReadOptionalNonNegativeIntegerTlv reads a nonNegativeInteger TLV of the
// specified type if it is the next element before bound, returning -1 if it is
// absent.
func (d *Decoder) ReadOptionalNonNegativeIntegerTlv(expectedType uint32, bound int) (int64, error) {
	gotExpectedType, err := d.PeekType(expectedType, bound)
	if err != nil {
		return -1, err
	}
	if !gotExpectedType {
		return -1, nil
	}
	value, err := d.ReadNonNegativeIntegerTlv(expectedType)
	if err != nil {
		return -1, err
	}
	if value > uint64(1)<<62 {
		return -1, ErrOverflow
	}
	return int64(value), nil
}

// ReadOptionalNonNegativeIntegerTlvAsFloat64 is like
// ReadOptionalNonNegativeIntegerTlv but returns the value as a float64.
func (d *Decoder) ReadOptionalNonNegativeIntegerTlvAsFloat64(expectedType uint32, bound int) (float64, error) {
	value, err := d.ReadOptionalNonNegativeIntegerTlv(expectedType, bound)
	if err != nil {
		return -1, err
	}
	return float64(value), nil
}

// SkipTlv skips the next TLV, whatever its type.
func (d *Decoder) SkipTlv() error {
	_, typeSize, err := d.readVarNumAt(d.offset)
	if err != nil {
		return err
	}
	length, lengthSize, err := d.readVarNumAt(d.offset + typeSize)
	if err != nil {
		return err
	}
	if length > uint64(len(d.input)-(d.offset+typeSize+lengthSize)) {
		return ErrTruncated
	}
	d.offset += typeSize + lengthSize + int(length)
	return nil
}

// SkipOptionalTlv skips the next TLV if it has the specified type and begins
// before bound.
func (d *Decoder) SkipOptionalTlv(expectedType uint32, bound int) error {
	gotExpectedType, err := d.PeekType(expectedType, bound)
	if err != nil {
		return err
	}
	if gotExpectedType {
		return d.SkipTlv()
	}
	return nil
}
