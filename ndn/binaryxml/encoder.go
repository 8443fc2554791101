/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package binaryxml

import (
	"math"
	"strconv"
)

// Encoder encodes Binary XML elements front-to-back. Elements are
// self-delimited by a close sentinel, so no length needs to be known in
// advance and the encoder writes in a single pass.
type Encoder struct {
	output []byte
}

// NewEncoder creates a new Encoder with an empty output buffer.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Offset returns the offset of the next byte to be written.
func (e *Encoder) Offset() int {
	return len(e.output)
}

// Output returns the encoded bytes written so far.
func (e *Encoder) Output() []byte {
	return e.output
}

// WriteTypeAndValue writes a type-and-value header. The value is split into a
// run of 7-bit continuation bytes followed by a final byte that carries the
// high bit, four low-order value bits, and the 3-bit node type.
func (e *Encoder) WriteTypeAndValue(tt uint8, value uint64) {
	var buf [10]byte
	i := len(buf)

	i--
	buf[i] = headerHighBit | byte(value&((1<<headerValueBits)-1))<<3 | (tt & 0x07)
	value >>= headerValueBits
	for value != 0 {
		i--
		buf[i] = byte(value & 0x7F)
		value >>= 7
	}

	e.output = append(e.output, buf[i:]...)
}

// WriteElementStartDTag writes the opening header of a DTAG element.
func (e *Encoder) WriteElementStartDTag(tag uint64) {
	e.WriteTypeAndValue(TTDTag, tag)
}

// WriteElementClose writes the close sentinel that terminates an element.
func (e *Encoder) WriteElementClose() {
	e.output = append(e.output, ElementClose)
}

// WriteBlob writes a BLOB token with the specified bytes.
func (e *Encoder) WriteBlob(value []byte) {
	e.WriteTypeAndValue(TTBlob, uint64(len(value)))
	e.output = append(e.output, value...)
}

// WriteUData writes a UDATA token with the specified UTF-8 text.
func (e *Encoder) WriteUData(value string) {
	e.WriteTypeAndValue(TTUData, uint64(len(value)))
	e.output = append(e.output, value...)
}

// WriteBlobDTagElement writes a complete DTAG element whose content is a BLOB.
func (e *Encoder) WriteBlobDTagElement(tag uint64, value []byte) {
	e.WriteElementStartDTag(tag)
	e.WriteBlob(value)
	e.WriteElementClose()
}

// WriteOptionalBlobDTagElement writes a blob DTAG element, or nothing if the
// value is nil.
func (e *Encoder) WriteOptionalBlobDTagElement(tag uint64, value []byte) {
	if value != nil {
		e.WriteBlobDTagElement(tag, value)
	}
}

// WriteUDataDTagElement writes a complete DTAG element whose content is UDATA.
func (e *Encoder) WriteUDataDTagElement(tag uint64, value string) {
	e.WriteElementStartDTag(tag)
	e.WriteUData(value)
	e.WriteElementClose()
}

// WriteUnsignedDecimalIntDTagElement writes a DTAG element whose content is
// the decimal text of the specified value, as the legacy encoding represents
// small integers.
func (e *Encoder) WriteUnsignedDecimalIntDTagElement(tag uint64, value uint64) {
	e.WriteUDataDTagElement(tag, strconv.FormatUint(value, 10))
}

// WriteOptionalUnsignedDecimalIntDTagElement writes a decimal integer DTAG
// element, or nothing if the value is negative.
func (e *Encoder) WriteOptionalUnsignedDecimalIntDTagElement(tag uint64, value int) {
	if value >= 0 {
		e.WriteUnsignedDecimalIntDTagElement(tag, uint64(value))
	}
}

// bigEndianBytes returns the minimal big-endian representation of the value,
// at least one byte long.
func bigEndianBytes(value uint64) []byte {
	var buf [8]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte(value & 0xFF)
		value >>= 8
		if value == 0 {
			break
		}
	}
	return buf[i:]
}

// WriteTimeMillisecondsDTagElement writes a DTAG element whose content is a
// BLOB holding the time converted to 4096ths of a second, big-endian.
func (e *Encoder) WriteTimeMillisecondsDTagElement(tag uint64, milliseconds float64) {
	units := uint64(math.Round(milliseconds / 1000.0 * 4096.0))
	e.WriteBlobDTagElement(tag, bigEndianBytes(units))
}

// WriteOptionalTimeMillisecondsDTagElement writes a time DTAG element, or
// nothing if the value is negative.
func (e *Encoder) WriteOptionalTimeMillisecondsDTagElement(tag uint64, milliseconds float64) {
	if milliseconds >= 0 {
		e.WriteTimeMillisecondsDTagElement(tag, milliseconds)
	}
}
