/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peetonn/go-ndn/ndn"
	"github.com/peetonn/go-ndn/ndn/tlv"
)

func TestDataEncodeEmptyContent(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("b")
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)

	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		tlv.Data, 0x10,
		tlv.Name, 0x03, tlv.GenericNameComponent, 0x01, 0x62,
		tlv.MetaInfo, 0x00,
		tlv.Content, 0x00,
		tlv.SignatureInfo, 0x03, tlv.SignatureType, 0x01, 0x00,
		tlv.SignatureValue, 0x00}, encoding.Bytes())

	// The signed portion starts past the outer header and ends at the
	// SignatureValue TLV.
	assert.Equal(t, 2, encoding.SignedBegin())
	assert.Equal(t, 16, encoding.SignedEnd())
}

func TestDataDecodeReportsSameSignedRange(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("b")
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)
	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	decoded := ndn.NewData()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes()))
	decodedEncoding := decoded.DefaultWireEncoding()
	assert.False(t, decodedEncoding.IsNull())
	assert.Equal(t, encoding.SignedBegin(), decodedEncoding.SignedBegin())
	assert.Equal(t, encoding.SignedEnd(), decodedEncoding.SignedEnd())
	assert.Equal(t, encoding.SignedBytes(), decodedEncoding.SignedBytes())
}

func TestDataMetaInfoFinalBlockId(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("b")
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)
	finalBlockID := ndn.NewGenericNameComponent([]byte{0x25, 0xFE})
	d.MetaInfo().SetFinalBlockID(&finalBlockID)

	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Contains(t, string(encoding.Bytes()), string([]byte{
		tlv.MetaInfo, 0x06,
		tlv.FinalBlockId, 0x04,
		tlv.GenericNameComponent, 0x02, 0x25, 0xFE}))

	decoded := ndn.NewData()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.NotNil(t, decoded.MetaInfo().FinalBlockID())
	assert.True(t, finalBlockID.Equals(*decoded.MetaInfo().FinalBlockID()))
}

func TestDataContentTypeMapping(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("b")
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)

	// The default BLOB stays off the wire.
	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, []byte{tlv.MetaInfo, 0x00},
		encoding.Bytes()[7:9])

	// KEY is written with its enum value.
	d.MetaInfo().SetContentType(ndn.ContentTypeKey)
	encoding, err = d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, []byte{tlv.MetaInfo, 0x03, tlv.ContentType, 0x01, 0x02},
		encoding.Bytes()[7:12])

	decoded := ndn.NewData()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.Equal(t, ndn.ContentTypeKey, decoded.MetaInfo().ContentType())

	// Anything outside the known set fails to encode.
	d.MetaInfo().SetContentType(ndn.ContentType(7))
	_, err = d.WireEncode(ndn.NewTlvWireFormat())
	assert.ErrorIs(t, err, ndn.ErrUnrecognizedContentType)
}

func TestDataFreshnessPeriod(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("b")
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)
	d.MetaInfo().SetFreshnessPeriod(5000)

	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	decoded := ndn.NewData()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.Equal(t, float64(5000), decoded.MetaInfo().FreshnessPeriod())

	// Absent on the wire maps back to -1.
	d.MetaInfo().SetFreshnessPeriod(-1)
	encoding, err = d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.Equal(t, float64(-1), decoded.MetaInfo().FreshnessPeriod())
}

func TestDataRoundTripWithKeyLocator(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("data").AppendString("packet")
	d.SetContent(ndn.NewBlob([]byte{0xCA, 0xFE}, true))
	d.Signature().SetType(ndn.SignatureTypeSha256WithRsa)
	d.Signature().KeyLocator().SetType(ndn.KeyLocatorTypeKeyName)
	d.Signature().KeyLocator().KeyName().AppendString("keys").AppendString("alice")
	d.Signature().SetSignature(ndn.NewBlob([]byte{0x01, 0x02, 0x03}, true))

	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	decoded := ndn.NewData()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.True(t, d.Equals(decoded))
	assert.Equal(t, ndn.SignatureTypeSha256WithRsa, decoded.Signature().Type())
	assert.Equal(t, "ndn:/keys/alice", decoded.Signature().KeyLocator().KeyName().ToUri())
	assert.Equal(t, []byte{0xCA, 0xFE}, decoded.Content().Bytes())

	// Idempotent re-encode.
	reEncoding, err := decoded.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, encoding.Bytes(), reEncoding.Bytes())
}

func TestDataUnsupportedSignatureType(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("b")
	// SignatureTypeNone cannot be encoded.
	_, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.ErrorIs(t, err, ndn.ErrUnsupportedSignatureType)

	// An unknown type on the wire fails to decode.
	wire := []byte{
		tlv.Data, 0x10,
		tlv.Name, 0x03, tlv.GenericNameComponent, 0x01, 0x62,
		tlv.MetaInfo, 0x00,
		tlv.Content, 0x00,
		tlv.SignatureInfo, 0x03, tlv.SignatureType, 0x01, 0x7F,
		tlv.SignatureValue, 0x00}
	decoded := ndn.NewData()
	assert.ErrorIs(t, decoded.WireDecode(wire, ndn.NewTlvWireFormat()), ndn.ErrUnsupportedSignatureType)
}

func TestDataChangeCountMonotonic(t *testing.T) {
	d := ndn.NewData()
	before := d.ChangeCount()
	d.SetContent(ndn.NewBlob([]byte{0x01}, false))
	afterContent := d.ChangeCount()
	assert.Greater(t, afterContent, before)

	// Mutating a deeply nested child is visible at the root.
	d.Signature().KeyLocator().KeyName().AppendString("k")
	afterNested := d.ChangeCount()
	assert.Greater(t, afterNested, afterContent)

	// Observations do not move the counter.
	_ = d.Name().ToUri()
	_ = d.MetaInfo().FreshnessPeriod()
	assert.Equal(t, afterNested, d.ChangeCount())
}

func TestDataDefaultWireEncodingCache(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("cached")
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)

	first, err := d.WireEncode()
	assert.NoError(t, err)
	second, err := d.WireEncode()
	assert.NoError(t, err)
	// The cached encoding is reused, not rebuilt.
	assert.Same(t, &first.Bytes()[0], &second.Bytes()[0])

	// Any mutation, even of a nested child, invalidates the cache.
	d.MetaInfo().SetFreshnessPeriod(1000)
	assert.True(t, d.DefaultWireEncoding().IsNull())
	third, err := d.WireEncode()
	assert.NoError(t, err)
	assert.NotEqual(t, first.Bytes(), third.Bytes())
}

func TestDataZeroCopyDecode(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("zero").AppendString("copy")
	d.SetContent(ndn.NewBlob([]byte{0x01, 0x02, 0x03}, true))
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)
	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	shared := ndn.NewData()
	assert.NoError(t, shared.WireDecodeShared(encoding.Blob))
	copied := ndn.NewData()
	assert.NoError(t, copied.WireDecode(encoding.Bytes()))

	assert.True(t, shared.Equals(copied))
	assert.True(t, shared.Equals(d))

	// The shared decode references the input buffer.
	contentValueOffset := 20
	assert.Same(t, &encoding.Bytes()[contentValueOffset], &shared.Content().Bytes()[0])
}
