/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// PublisherPublicKeyDigest holds the legacy publisher public key digest
// carried by Binary XML Interests and SignedInfo blocks.
//
// Deprecated: use a KeyLocator of type KeyLocatorTypeKeyLocatorDigest.
type PublisherPublicKeyDigest struct {
	digest      Blob
	changeCount uint64
}

// NewPublisherPublicKeyDigest constructs an empty PublisherPublicKeyDigest.
func NewPublisherPublicKeyDigest() *PublisherPublicKeyDigest {
	return new(PublisherPublicKeyDigest)
}

// Digest returns the held digest, which is null when unset.
func (p *PublisherPublicKeyDigest) Digest() Blob {
	return p.digest
}

// SetDigest sets the held digest.
func (p *PublisherPublicKeyDigest) SetDigest(digest Blob) {
	p.digest = digest
	p.changeCount++
}

// Clear unsets the digest.
func (p *PublisherPublicKeyDigest) Clear() {
	p.digest = Blob{}
	p.changeCount++
}

// ChangeCount returns the number of mutations made to this object.
func (p *PublisherPublicKeyDigest) ChangeCount() uint64 {
	return p.changeCount
}
