/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peetonn/go-ndn/ndn"
	"github.com/peetonn/go-ndn/ndn/security"
)

func TestDigestSha256SignAndValidate(t *testing.T) {
	buffer := []byte{0x01, 0x02, 0x03}
	signature, err := security.Sign(ndn.SignatureTypeDigestSha256, buffer)
	assert.NoError(t, err)

	expected := sha256.Sum256(buffer)
	assert.Equal(t, expected[:], signature)

	ok, err := security.Verify(ndn.SignatureTypeDigestSha256, buffer, signature)
	assert.NoError(t, err)
	assert.True(t, ok)

	signature[0] ^= 0xFF
	ok, err = security.Verify(ndn.SignatureTypeDigestSha256, buffer, signature)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSignWithoutSignerFails(t *testing.T) {
	_, err := security.Sign(ndn.SignatureTypeSha256WithRsa, []byte{0x01})
	assert.Error(t, err)
	_, err = security.Verify(ndn.SignatureTypeSha256WithEcdsa, []byte{0x01}, []byte{0x02})
	assert.Error(t, err)
}

func TestSignDataCoversSignedPortion(t *testing.T) {
	d := ndn.NewData()
	d.Name().AppendString("signed").AppendString("data")
	d.SetContent(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, true))
	d.Signature().SetType(ndn.SignatureTypeDigestSha256)

	assert.NoError(t, security.SignData(d, ndn.NewTlvWireFormat()))
	assert.Equal(t, sha256.Size, d.Signature().Signature().Size())

	// The signature is the digest of exactly the signed byte range.
	encoding, err := d.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	expected := sha256.Sum256(encoding.SignedBytes())
	assert.Equal(t, expected[:], d.Signature().Signature().Bytes())

	ok, err := security.VerifyData(d, ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.True(t, ok)

	// A decoded copy verifies too.
	decoded := ndn.NewData()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	ok, err = security.VerifyData(decoded, ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.True(t, ok)

	// Tampering with the content breaks verification.
	decoded.SetContent(ndn.NewBlob([]byte{0xFF}, false))
	ok, err = security.VerifyData(decoded, ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.False(t, ok)
}
