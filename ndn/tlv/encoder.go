/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"math"
)

// Encoder encodes TLV elements front-to-back into a growing output buffer.
// Because a TLV length header must precede the value it describes, nested
// values are measured with a disabled-output dry run before the header is
// written, then written for real. Offset always reflects the position the next
// byte would occupy in the finished buffer, which lets callers record
// signed-portion offsets while encoding.
type Encoder struct {
	output       []byte
	offset       int
	enableOutput bool
}

// NewEncoder creates a new Encoder with an empty output buffer.
func NewEncoder() *Encoder {
	return &Encoder{enableOutput: true}
}

// Offset returns the offset of the next byte to be written.
func (e *Encoder) Offset() int {
	return e.offset
}

// Output returns the encoded bytes written so far.
func (e *Encoder) Output() []byte {
	return e.output
}

func (e *Encoder) writeBytes(value []byte) {
	if e.enableOutput {
		e.output = append(e.output, value...)
	}
	e.offset += len(value)
}

func (e *Encoder) writeByte(value byte) {
	if e.enableOutput {
		e.output = append(e.output, value)
	}
	e.offset++
}

// VarNumSize returns the number of bytes a VAR-NUMBER of the specified value occupies.
func VarNumSize(value uint64) int {
	switch {
	case value < 0xFD:
		return 1
	case value <= 0xFFFF:
		return 3
	case value <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// WriteVarNum writes a VAR-NUMBER of the specified value.
func (e *Encoder) WriteVarNum(value uint64) {
	if !e.enableOutput {
		e.offset += VarNumSize(value)
		return
	}

	switch {
	case value < 0xFD:
		e.writeByte(byte(value))
	case value <= 0xFFFF:
		var buf [3]byte
		buf[0] = 0xFD
		binary.BigEndian.PutUint16(buf[1:], uint16(value))
		e.writeBytes(buf[:])
	case value <= 0xFFFFFFFF:
		var buf [5]byte
		buf[0] = 0xFE
		binary.BigEndian.PutUint32(buf[1:], uint32(value))
		e.writeBytes(buf[:])
	default:
		var buf [9]byte
		buf[0] = 0xFF
		binary.BigEndian.PutUint64(buf[1:], value)
		e.writeBytes(buf[:])
	}
}

// WriteTypeAndLength writes the TLV header for the specified type and value length.
func (e *Encoder) WriteTypeAndLength(tlvType uint32, length int) {
	e.WriteVarNum(uint64(tlvType))
	e.WriteVarNum(uint64(length))
}

// NonNegativeIntegerSize returns the number of bytes a nonNegativeInteger of
// the specified value occupies: the minimal width among 1, 2, 4, and 8.
func NonNegativeIntegerSize(value uint64) int {
	switch {
	case value <= math.MaxUint8:
		return 1
	case value <= math.MaxUint16:
		return 2
	case value <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// WriteNonNegativeInteger writes a nonNegativeInteger in the minimal width.
func (e *Encoder) WriteNonNegativeInteger(value uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	e.writeBytes(buf[8-NonNegativeIntegerSize(value):])
}

// WriteNonNegativeIntegerTlv writes a TLV of the specified type whose value is
// a minimal-width nonNegativeInteger.
func (e *Encoder) WriteNonNegativeIntegerTlv(tlvType uint32, value uint64) {
	e.WriteTypeAndLength(tlvType, NonNegativeIntegerSize(value))
	e.WriteNonNegativeInteger(value)
}

// WriteOptionalNonNegativeIntegerTlv writes a nonNegativeInteger TLV, or
// nothing if the value is negative.
func (e *Encoder) WriteOptionalNonNegativeIntegerTlv(tlvType uint32, value int) {
	if value >= 0 {
		e.WriteNonNegativeIntegerTlv(tlvType, uint64(value))
	}
}

// WriteOptionalNonNegativeIntegerTlvFromFloat64 rounds the value to the
// nearest integer and writes a nonNegativeInteger TLV, or nothing if the value
// is negative.
func (e *Encoder) WriteOptionalNonNegativeIntegerTlvFromFloat64(tlvType uint32, value float64) {
	if value >= 0 {
		e.WriteNonNegativeIntegerTlv(tlvType, uint64(math.Round(value)))
	}
}

// WriteBlobTlv writes a TLV of the specified type with the specified bytes as
// its value. A nil value writes a zero-length TLV.
func (e *Encoder) WriteBlobTlv(tlvType uint32, value []byte) {
	e.WriteTypeAndLength(tlvType, len(value))
	e.writeBytes(value)
}

// WriteOptionalBlobTlv writes a blob TLV, or nothing if the value is nil.
func (e *Encoder) WriteOptionalBlobTlv(tlvType uint32, value []byte) {
	if value != nil {
		e.WriteBlobTlv(tlvType, value)
	}
}

// SizeOfBlobTlv returns the encoded size of a blob TLV of the specified type
// and value length.
func SizeOfBlobTlv(tlvType uint32, length int) int {
	return VarNumSize(uint64(tlvType)) + VarNumSize(uint64(length)) + length
}

// WriteNestedTlv writes a TLV of the specified type whose value is produced by
// writeValue. The value is first measured with output disabled so that the
// length header can be written in front of it, then written for real. If
// omitIfEmpty and writeValue produces no bytes, nothing is emitted at all.
func (e *Encoder) WriteNestedTlv(tlvType uint32, writeValue func(*Encoder) error, omitIfEmpty bool) error {
	originalEnableOutput := e.enableOutput
	saveOffset := e.offset

	// Dry run to learn the value length.
	e.enableOutput = false
	if err := writeValue(e); err != nil {
		e.enableOutput = originalEnableOutput
		e.offset = saveOffset
		return err
	}
	valueLength := e.offset - saveOffset
	e.offset = saveOffset
	e.enableOutput = originalEnableOutput

	if omitIfEmpty && valueLength == 0 {
		return nil
	}

	e.WriteTypeAndLength(tlvType, valueLength)
	if e.enableOutput {
		if err := writeValue(e); err != nil {
			return err
		}
	} else {
		// The caller is itself inside a dry run; just account for the value.
		e.offset += valueLength
	}
	return nil
}
