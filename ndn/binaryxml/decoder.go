/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package binaryxml

import (
	"strconv"
)

// Decoder maintains a cursor over a read-only input buffer and decodes Binary
// XML elements from it. Blob reads return slices of the input buffer, so the
// buffer must outlive any blobs the caller keeps; UDATA reads return strings
// copied from it.
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

// readTypeAndValueAt decodes the type-and-value header at the specified
// position without moving the cursor, returning the node type, the value, and
// the header size.
func (d *Decoder) readTypeAndValueAt(offset int) (uint8, uint64, int, error) {
	var value uint64
	size := 0
	for {
		if offset+size >= len(d.input) {
			return 0, 0, 0, ErrTruncated
		}
		b := d.input[offset+size]
		size++
		if b&headerHighBit != 0 {
			value = value<<headerValueBits | uint64(b>>3&((1<<headerValueBits)-1))
			return b & 0x07, value, size, nil
		}
		if size == 1 && b == ElementClose {
			return 0, 0, 0, ErrMalformed
		}
		value = value<<7 | uint64(b&0x7F)
	}
}

// ReadTypeAndValue reads a type-and-value header and advances the cursor past it.
func (d *Decoder) ReadTypeAndValue() (uint8, uint64, error) {
	tt, value, size, err := d.readTypeAndValueAt(d.offset)
	if err != nil {
		return 0, 0, err
	}
	d.offset += size
	return tt, value, nil
}

// PeekDTag returns whether the next token opens a DTAG element with the
// specified tag, without advancing the cursor.
func (d *Decoder) PeekDTag(expectedTag uint64) (bool, error) {
	if d.offset < len(d.input) && d.input[d.offset] == ElementClose {
		return false, nil
	}
	tt, value, _, err := d.readTypeAndValueAt(d.offset)
	if err != nil {
		return false, err
	}
	return tt == TTDTag && value == expectedTag, nil
}

// PeekElementClose returns whether the next byte is the element close sentinel.
func (d *Decoder) PeekElementClose() bool {
	return d.offset < len(d.input) && d.input[d.offset] == ElementClose
}

// ReadElementStartDTag reads the opening header of a DTAG element, requiring
// the specified tag.
func (d *Decoder) ReadElementStartDTag(expectedTag uint64) error {
	tt, value, err := d.ReadTypeAndValue()
	if err != nil {
		return err
	}
	if tt != TTDTag || value != expectedTag {
		return ErrUnexpectedType
	}
	return nil
}

// ReadElementClose reads the close sentinel that terminates an element.
func (d *Decoder) ReadElementClose() error {
	if d.offset >= len(d.input) {
		return ErrTruncated
	}
	if d.input[d.offset] != ElementClose {
		return ErrUnexpectedType
	}
	d.offset++
	return nil
}

// ReadBlob reads a BLOB token and returns its bytes as a slice of the input
// buffer, without copying.
func (d *Decoder) ReadBlob() ([]byte, error) {
	tt, length, err := d.ReadTypeAndValue()
	if err != nil {
		return nil, err
	}
	if tt != TTBlob {
		return nil, ErrUnexpectedType
	}
	if length > uint64(len(d.input)-d.offset) {
		return nil, ErrTruncated
	}
	value := d.input[d.offset : d.offset+int(length)]
	d.offset += int(length)
	return value, nil
}

// ReadUData reads a UDATA token and returns its text.
func (d *Decoder) ReadUData() (string, error) {
	tt, length, err := d.ReadTypeAndValue()
	if err != nil {
		return "", err
	}
	if tt != TTUData {
		return "", ErrUnexpectedType
	}
	if length > uint64(len(d.input)-d.offset) {
		return "", ErrTruncated
	}
	value := string(d.input[d.offset : d.offset+int(length)])
	d.offset += int(length)
	return value, nil
}

// ReadBinaryDTagElement reads a complete DTAG element with the specified tag
// whose content is a BLOB. If allowNull and the element content is empty, nil
// is returned.
func (d *Decoder) ReadBinaryDTagElement(expectedTag uint64, allowNull bool) ([]byte, error) {
	if err := d.ReadElementStartDTag(expectedTag); err != nil {
		return nil, err
	}
	if allowNull && d.PeekElementClose() {
		d.offset++
		return nil, nil
	}
	value, err := d.ReadBlob()
	if err != nil {
		return nil, err
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return value, nil
}

// ReadOptionalBinaryDTagElement reads a blob DTAG element if it is next,
// returning nil if it is absent.
func (d *Decoder) ReadOptionalBinaryDTagElement(expectedTag uint64, allowNull bool) ([]byte, error) {
	gotExpectedTag, err := d.PeekDTag(expectedTag)
	if err != nil {
		return nil, err
	}
	if !gotExpectedTag {
		return nil, nil
	}
	return d.ReadBinaryDTagElement(expectedTag, allowNull)
}

// ReadUDataDTagElement reads a complete DTAG element with the specified tag
// whose content is UDATA.
func (d *Decoder) ReadUDataDTagElement(expectedTag uint64) (string, error) {
	if err := d.ReadElementStartDTag(expectedTag); err != nil {
		return "", err
	}
	value, err := d.ReadUData()
	if err != nil {
		return "", err
	}
	if err := d.ReadElementClose(); err != nil {
		return "", err
	}
	return value, nil
}

// ReadUnsignedIntegerDTagElement reads a DTAG element whose content is a
// decimal integer.
func (d *Decoder) ReadUnsignedIntegerDTagElement(expectedTag uint64) (uint64, error) {
	text, err := d.ReadUDataDTagElement(expectedTag)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return value, nil
}

// ReadOptionalUnsignedIntegerDTagElement reads a decimal integer DTAG element
// if it is next, returning -1 if it is absent.
func (d *Decoder) ReadOptionalUnsignedIntegerDTagElement(expectedTag uint64) (int, error) {
	gotExpectedTag, err := d.PeekDTag(expectedTag)
	if err != nil {
		return -1, err
	}
	if !gotExpectedTag {
		return -1, nil
	}
	value, err := d.ReadUnsignedIntegerDTagElement(expectedTag)
	if err != nil {
		return -1, err
	}
	return int(value), nil
}

// ReadTimeMillisecondsDTagElement reads a DTAG element whose content is a
// big-endian time in 4096ths of a second, returning milliseconds.
func (d *Decoder) ReadTimeMillisecondsDTagElement(expectedTag uint64) (float64, error) {
	value, err := d.ReadBinaryDTagElement(expectedTag, false)
	if err != nil {
		return -1, err
	}
	var units uint64
	for _, b := range value {
		units = units<<8 | uint64(b)
	}
	return float64(units) / 4096.0 * 1000.0, nil
}

// ReadOptionalTimeMillisecondsDTagElement reads a time DTAG element if it is
// next, returning -1 if it is absent.
func (d *Decoder) ReadOptionalTimeMillisecondsDTagElement(expectedTag uint64) (float64, error) {
	gotExpectedTag, err := d.PeekDTag(expectedTag)
	if err != nil {
		return -1, err
	}
	if !gotExpectedTag {
		return -1, nil
	}
	return d.ReadTimeMillisecondsDTagElement(expectedTag)
}

// SkipElement skips the next complete element, descending into nested
// elements until the matching close sentinel. Unknown dictionary tags are
// tolerated, which is what lets decoders skip non-critical elements.
func (d *Decoder) SkipElement() error {
	tt, length, err := d.ReadTypeAndValue()
	if err != nil {
		return err
	}

	switch tt {
	case TTBlob, TTUData:
		if length > uint64(len(d.input)-d.offset) {
			return ErrTruncated
		}
		d.offset += int(length)
		return nil
	case TTDTag, TTTag:
		for !d.PeekElementClose() {
			if err := d.SkipElement(); err != nil {
				return err
			}
		}
		return d.ReadElementClose()
	case TTAttr, TTDAttr, TTExt:
		// Attributes carry no nested content beyond their value token.
		if tt == TTAttr {
			if length > uint64(len(d.input)-d.offset) {
				return ErrTruncated
			}
			d.offset += int(length)
		}
		return nil
	default:
		return ErrMalformed
	}
}
