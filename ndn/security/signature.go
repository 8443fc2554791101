/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"errors"

	"github.com/peetonn/go-ndn/ndn"
)

// Signer produces and validates signature bits over a signed portion buffer.
type Signer interface {
	Sign(buffer []byte) ([]byte, error)
	Validate(buffer []byte, signature []byte) bool
}

// signerFor returns the Signer for the specified signature type, or nil if the
// type has no key-less signer.
func signerFor(signatureType ndn.SignatureType) Signer {
	if signatureType == ndn.SignatureTypeDigestSha256 {
		return DigestSha256{}
	}
	return nil
}

// Sign signs the provided buffer using the appropriate signer.
func Sign(signatureType ndn.SignatureType, buffer []byte) ([]byte, error) {
	signer := signerFor(signatureType)
	if signer == nil {
		return nil, errors.New("no signer for SignatureType")
	}
	return signer.Sign(buffer)
}

// Verify verifies the provided signature against the provided buffer using the
// appropriate signer.
func Verify(signatureType ndn.SignatureType, buffer []byte, signature []byte) (bool, error) {
	signer := signerFor(signatureType)
	if signer == nil {
		return false, errors.New("no signer for SignatureType")
	}
	return signer.Validate(buffer, signature), nil
}

// SignData encodes the Data with the specified wire format (or the default),
// signs the signed portion, and sets the signature bits on the Data. Only
// key-less signature types can be signed this way.
func SignData(data *ndn.Data, wireFormat ...ndn.WireFormat) error {
	encoding, err := data.WireEncode(wireFormat...)
	if err != nil {
		return err
	}
	signature, err := Sign(data.Signature().Type(), encoding.SignedBytes())
	if err != nil {
		return err
	}
	data.Signature().SetSignature(ndn.NewBlob(signature, false))
	return nil
}

// VerifyData re-encodes the Data with the specified wire format (or the
// default) and validates its signature bits over the signed portion.
func VerifyData(data *ndn.Data, wireFormat ...ndn.WireFormat) (bool, error) {
	signatureBits := data.Signature().Signature()
	encoding, err := data.WireEncode(wireFormat...)
	if err != nil {
		return false, err
	}
	return Verify(data.Signature().Type(), encoding.SignedBytes(), signatureBits.Bytes())
}
