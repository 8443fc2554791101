/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peetonn/go-ndn/ndn/tlv"
)

func TestDecodeVarNumWidths(t *testing.T) {
	d := tlv.NewDecoder([]byte{0xFC})
	v, err := d.ReadVarNum()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0xFC), v)

	d = tlv.NewDecoder([]byte{0xFD, 0x01, 0x00})
	v, err = d.ReadVarNum()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x100), v)

	d = tlv.NewDecoder([]byte{0xFE, 0x00, 0x01, 0x00, 0x00})
	v, err = d.ReadVarNum()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x10000), v)

	d = tlv.NewDecoder([]byte{0xFF, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00})
	v, err = d.ReadVarNum()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x100000000), v)
}

func TestDecodeVarNumTruncated(t *testing.T) {
	_, err := tlv.NewDecoder([]byte{}).ReadVarNum()
	assert.ErrorIs(t, err, tlv.ErrTruncated)

	_, err = tlv.NewDecoder([]byte{0xFD, 0x01}).ReadVarNum()
	assert.ErrorIs(t, err, tlv.ErrTruncated)

	_, err = tlv.NewDecoder([]byte{0xFE, 0x01, 0x02}).ReadVarNum()
	assert.ErrorIs(t, err, tlv.ErrTruncated)
}

func TestDecodeBlobTlv(t *testing.T) {
	input := []byte{tlv.Content, 0x03, 0x01, 0x02, 0x03}
	d := tlv.NewDecoder(input)
	value, err := d.ReadBlobTlv(tlv.Content)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, value)
	assert.Equal(t, 5, d.Offset())

	// The returned slice references the input buffer.
	assert.Same(t, &input[2], &value[0])
}

func TestDecodeBlobTlvUnexpectedType(t *testing.T) {
	d := tlv.NewDecoder([]byte{tlv.Content, 0x00})
	_, err := d.ReadBlobTlv(tlv.Name)
	assert.ErrorIs(t, err, tlv.ErrUnexpectedType)
	// The peek did not consume anything.
	assert.Equal(t, 0, d.Offset())
}

func TestDecodeBlobTlvTruncatedLength(t *testing.T) {
	d := tlv.NewDecoder([]byte{tlv.Content, 0x05, 0x01})
	_, err := d.ReadBlobTlv(tlv.Content)
	assert.ErrorIs(t, err, tlv.ErrTruncated)
}

func TestDecodeNonNegativeIntegerWidths(t *testing.T) {
	for _, test := range []struct {
		input    []byte
		expected uint64
	}{
		{[]byte{0x0C, 0x01, 0xFF}, 0xFF},
		{[]byte{0x0C, 0x02, 0x01, 0x00}, 0x100},
		{[]byte{0x0C, 0x04, 0x00, 0x01, 0x00, 0x00}, 0x10000},
		{[]byte{0x0C, 0x08, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, 0x100000000},
	} {
		d := tlv.NewDecoder(test.input)
		v, err := d.ReadNonNegativeIntegerTlv(0x0C)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, v)
	}
}

func TestDecodeNonNegativeIntegerBadWidth(t *testing.T) {
	d := tlv.NewDecoder([]byte{0x0C, 0x03, 0x01, 0x02, 0x03})
	_, err := d.ReadNonNegativeIntegerTlv(0x0C)
	assert.ErrorIs(t, err, tlv.ErrMalformed)
}

func TestDecodeOptionalNonNegativeInteger(t *testing.T) {
	d := tlv.NewDecoder([]byte{0x0C, 0x01, 0x2A})
	v, err := d.ReadOptionalNonNegativeIntegerTlv(0x0C, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	d = tlv.NewDecoder([]byte{0x0D, 0x01, 0x2A})
	v, err = d.ReadOptionalNonNegativeIntegerTlv(0x0C, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), v)
	assert.Equal(t, 0, d.Offset())
}

func TestDecodeNestedTlvs(t *testing.T) {
	d := tlv.NewDecoder([]byte{tlv.Name, 0x05,
		tlv.GenericNameComponent, 0x03, 0x6E, 0x64, 0x6E})
	endOffset, err := d.ReadNestedTlvsStart(tlv.Name)
	assert.NoError(t, err)
	assert.Equal(t, 7, endOffset)

	value, err := d.ReadBlobTlv(tlv.GenericNameComponent)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x6E, 0x64, 0x6E}, value)
	assert.NoError(t, d.FinishNestedTlvs(endOffset))
}

func TestFinishNestedTlvsSkipsNonCritical(t *testing.T) {
	// A trailing unknown TLV of type 0x80 is non-critical and skipped.
	d := tlv.NewDecoder([]byte{tlv.MetaInfo, 0x04, 0x80, 0x02, 0xAA, 0xBB})
	endOffset, err := d.ReadNestedTlvsStart(tlv.MetaInfo)
	assert.NoError(t, err)
	assert.NoError(t, d.FinishNestedTlvs(endOffset))
	assert.Equal(t, endOffset, d.Offset())
}

func TestFinishNestedTlvsRejectsCritical(t *testing.T) {
	// A trailing unknown TLV of type 0x60 is critical.
	d := tlv.NewDecoder([]byte{tlv.MetaInfo, 0x04, 0x60, 0x02, 0xAA, 0xBB})
	endOffset, err := d.ReadNestedTlvsStart(tlv.MetaInfo)
	assert.NoError(t, err)
	assert.ErrorIs(t, d.FinishNestedTlvs(endOffset), tlv.ErrUnexpectedType)
}

func TestFinishNestedTlvsLengthMismatch(t *testing.T) {
	d := tlv.NewDecoder([]byte{tlv.MetaInfo, 0x03, 0x80, 0x03, 0xAA, 0xBB, 0xCC})
	endOffset, err := d.ReadNestedTlvsStart(tlv.MetaInfo)
	assert.NoError(t, err)
	assert.Error(t, d.FinishNestedTlvs(endOffset))
}

func TestPeekType(t *testing.T) {
	d := tlv.NewDecoder([]byte{tlv.Selectors, 0x00, tlv.Nonce, 0x00})
	gotIt, err := d.PeekType(tlv.Selectors, 4)
	assert.NoError(t, err)
	assert.True(t, gotIt)
	gotIt, err = d.PeekType(tlv.Nonce, 4)
	assert.NoError(t, err)
	assert.False(t, gotIt)

	// Past the bound, nothing is seen.
	gotIt, err = d.PeekType(tlv.Selectors, 0)
	assert.NoError(t, err)
	assert.False(t, gotIt)
}

func TestIsCritical(t *testing.T) {
	assert.True(t, tlv.IsCritical(tlv.Name))
	assert.True(t, tlv.IsCritical(0x7E))
	assert.False(t, tlv.IsCritical(0x7F))
	assert.False(t, tlv.IsCritical(0x80))
}
