/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// SignatureType tags which kind of signature a Signature holds. The values
// match the NDN-TLV SignatureType assignments.
type SignatureType int

// The possible values of SignatureType.
const (
	SignatureTypeNone            SignatureType = -1
	SignatureTypeDigestSha256    SignatureType = 0
	SignatureTypeSha256WithRsa   SignatureType = 1
	SignatureTypeSha256WithEcdsa SignatureType = 3
)

// Signature represents the signature of a Data packet as a tagged variant over
// the known signature kinds. The tag constrains which fields are significant:
// DigestSha256 uses only the signature bits; Sha256WithRsa and
// Sha256WithEcdsa add the key locator; the witness, digest algorithm, and
// publisher public key digest exist for the legacy Binary XML encoding.
type Signature struct {
	signatureType            SignatureType
	digestAlgorithm          Blob
	witness                  Blob
	signature                Blob
	publisherPublicKeyDigest ChangeCounter[*PublisherPublicKeyDigest]
	keyLocator               ChangeCounter[*KeyLocator]
	changeCount              uint64
}

// NewSignature constructs a Signature with type SignatureTypeNone.
func NewSignature() *Signature {
	s := new(Signature)
	s.signatureType = SignatureTypeNone
	s.publisherPublicKeyDigest = NewChangeCounter(NewPublisherPublicKeyDigest())
	s.keyLocator = NewChangeCounter(NewKeyLocator())
	return s
}

// NewSignatureWithType constructs a Signature with the specified type.
func NewSignatureWithType(signatureType SignatureType) *Signature {
	s := NewSignature()
	s.signatureType = signatureType
	return s
}

// Type returns the kind of signature held.
func (s *Signature) Type() SignatureType {
	return s.signatureType
}

// SetType sets the kind of signature held.
func (s *Signature) SetType(signatureType SignatureType) {
	s.signatureType = signatureType
	s.changeCount++
}

// DigestAlgorithm returns the digest algorithm OID bytes. When null, the
// algorithm defaults to 2.16.840.1.101.3.4.2.1 (sha-256).
func (s *Signature) DigestAlgorithm() Blob {
	return s.digestAlgorithm
}

// SetDigestAlgorithm sets the digest algorithm OID bytes.
func (s *Signature) SetDigestAlgorithm(digestAlgorithm Blob) {
	s.digestAlgorithm = digestAlgorithm
	s.changeCount++
}

// Witness returns the witness bytes, used only by the Binary XML encoding.
func (s *Signature) Witness() Blob {
	return s.witness
}

// SetWitness sets the witness bytes.
func (s *Signature) SetWitness(witness Blob) {
	s.witness = witness
	s.changeCount++
}

// Signature returns the signature bits.
func (s *Signature) Signature() Blob {
	return s.signature
}

// SetSignature sets the signature bits.
func (s *Signature) SetSignature(signature Blob) {
	s.signature = signature
	s.changeCount++
}

// PublisherPublicKeyDigest returns the legacy publisher public key digest.
// The returned object is live: mutations to it are seen by this Signature's
// change count.
//
// Deprecated: set a KeyLocator of type KeyLocatorTypeKeyLocatorDigest instead.
func (s *Signature) PublisherPublicKeyDigest() *PublisherPublicKeyDigest {
	return s.publisherPublicKeyDigest.Get()
}

// SetPublisherPublicKeyDigest sets the legacy publisher public key digest.
//
// Deprecated: set a KeyLocator of type KeyLocatorTypeKeyLocatorDigest instead.
func (s *Signature) SetPublisherPublicKeyDigest(digest *PublisherPublicKeyDigest) {
	if digest == nil {
		digest = NewPublisherPublicKeyDigest()
	}
	s.publisherPublicKeyDigest.Set(digest)
	s.changeCount++
}

// KeyLocator returns the key locator, which is meaningful when the signature
// type is Sha256WithRsa or Sha256WithEcdsa. The returned object is live.
func (s *Signature) KeyLocator() *KeyLocator {
	return s.keyLocator.Get()
}

// SetKeyLocator sets the key locator. A nil locator clears it.
func (s *Signature) SetKeyLocator(keyLocator *KeyLocator) {
	if keyLocator == nil {
		keyLocator = NewKeyLocator()
	}
	s.keyLocator.Set(keyLocator)
	s.changeCount++
}

// Clear resets the Signature to type SignatureTypeNone with no fields set.
func (s *Signature) Clear() {
	s.signatureType = SignatureTypeNone
	s.digestAlgorithm = Blob{}
	s.witness = Blob{}
	s.signature = Blob{}
	s.publisherPublicKeyDigest.Set(NewPublisherPublicKeyDigest())
	s.keyLocator.Set(NewKeyLocator())
	s.changeCount++
}

// Equals returns whether the two Signatures hold the same type, bits, and key
// locator. Null bits and empty bits compare equal, since both encode as a
// zero-length SignatureValue.
func (s *Signature) Equals(other *Signature) bool {
	if other == nil || s.signatureType != other.signatureType {
		return false
	}
	if !s.signature.Equals(other.signature) &&
		(s.signature.Size() != 0 || other.signature.Size() != 0) {
		return false
	}
	return s.keyLocator.Get().Equals(other.keyLocator.Get())
}

// ChangeCount returns the number of mutations made to this Signature or its
// children.
func (s *Signature) ChangeCount() uint64 {
	changed := s.keyLocator.CheckChanged()
	changed = s.publisherPublicKeyDigest.CheckChanged() || changed
	if changed {
		s.changeCount++
	}
	return s.changeCount
}
