/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// KeyLocatorType tags which kind of key reference a KeyLocator holds.
type KeyLocatorType int

// The possible values of KeyLocatorType.
const (
	KeyLocatorTypeNone             KeyLocatorType = -1
	KeyLocatorTypeKeyName          KeyLocatorType = 1
	KeyLocatorTypeKeyLocatorDigest KeyLocatorType = 2
	// KeyLocatorTypeKey carries raw key bytes. Used only by the legacy Binary
	// XML encoding.
	KeyLocatorTypeKey KeyLocatorType = 3
	// KeyLocatorTypeCertificate carries certificate bytes. Used only by the
	// legacy Binary XML encoding.
	KeyLocatorTypeCertificate KeyLocatorType = 4
)

// KeyNameType is the legacy subtag refining a KEYNAME key locator.
//
// Deprecated: the digest kinds are Binary XML concepts; the TLV encoding
// carries only the key name.
type KeyNameType int

// The possible values of KeyNameType.
const (
	KeyNameTypeNone                             KeyNameType = -1
	KeyNameTypePublisherPublicKeyDigest         KeyNameType = 1
	KeyNameTypePublisherCertificateDigest       KeyNameType = 2
	KeyNameTypePublisherIssuerKeyDigest         KeyNameType = 3
	KeyNameTypePublisherIssuerCertificateDigest KeyNameType = 4
)

// KeyLocator identifies the key that signed a packet, either by the key's
// name, by a digest of the key, or by embedded key or certificate bytes.
type KeyLocator struct {
	locatorType   KeyLocatorType
	keyName       ChangeCounter[*Name]
	keyData       Blob
	keyNameType   KeyNameType
	keyNameDigest Blob
	changeCount   uint64
}

// NewKeyLocator constructs a KeyLocator with type KeyLocatorTypeNone.
func NewKeyLocator() *KeyLocator {
	k := new(KeyLocator)
	k.locatorType = KeyLocatorTypeNone
	k.keyName = NewChangeCounter(NewName())
	k.keyNameType = KeyNameTypeNone
	return k
}

// Type returns the kind of key reference held.
func (k *KeyLocator) Type() KeyLocatorType {
	return k.locatorType
}

// SetType sets the kind of key reference held.
func (k *KeyLocator) SetType(locatorType KeyLocatorType) {
	k.locatorType = locatorType
	k.changeCount++
}

// KeyName returns the key name, which is meaningful when the type is
// KeyLocatorTypeKeyName. The returned name is live: mutations to it are seen
// by this KeyLocator's change count.
func (k *KeyLocator) KeyName() *Name {
	return k.keyName.Get()
}

// SetKeyName sets the key name. A nil name clears it.
func (k *KeyLocator) SetKeyName(name *Name) {
	if name == nil {
		name = NewName()
	}
	k.keyName.Set(name)
	k.changeCount++
}

// KeyData returns the key, certificate, or digest bytes, which are meaningful
// when the type is KeyLocatorTypeKeyLocatorDigest, KeyLocatorTypeKey, or
// KeyLocatorTypeCertificate.
func (k *KeyLocator) KeyData() Blob {
	return k.keyData
}

// SetKeyData sets the key, certificate, or digest bytes.
func (k *KeyLocator) SetKeyData(keyData Blob) {
	k.keyData = keyData
	k.changeCount++
}

// KeyNameType returns the legacy subtag refining a KEYNAME locator.
//
// Deprecated: only the Binary XML encoding distinguishes key name digests.
func (k *KeyLocator) KeyNameType() KeyNameType {
	return k.keyNameType
}

// SetKeyNameType sets the legacy subtag refining a KEYNAME locator.
//
// Deprecated: only the Binary XML encoding distinguishes key name digests.
func (k *KeyLocator) SetKeyNameType(keyNameType KeyNameType) {
	k.keyNameType = keyNameType
	k.changeCount++
}

// KeyNameDigest returns the digest bytes attached to a legacy KEYNAME locator.
//
// Deprecated: only the Binary XML encoding carries a key name digest.
func (k *KeyLocator) KeyNameDigest() Blob {
	return k.keyNameDigest
}

// SetKeyNameDigest sets the digest bytes attached to a legacy KEYNAME locator.
//
// Deprecated: only the Binary XML encoding carries a key name digest.
func (k *KeyLocator) SetKeyNameDigest(digest Blob) {
	k.keyNameDigest = digest
	k.changeCount++
}

// Clear resets the KeyLocator to type KeyLocatorTypeNone with no fields set.
func (k *KeyLocator) Clear() {
	k.locatorType = KeyLocatorTypeNone
	k.keyName.Set(NewName())
	k.keyData = Blob{}
	k.keyNameType = KeyNameTypeNone
	k.keyNameDigest = Blob{}
	k.changeCount++
}

// Equals returns whether the two KeyLocators hold the same reference.
func (k *KeyLocator) Equals(other *KeyLocator) bool {
	if other == nil || k.locatorType != other.locatorType {
		return false
	}
	switch k.locatorType {
	case KeyLocatorTypeKeyName:
		return k.keyName.Get().Equals(other.keyName.Get())
	case KeyLocatorTypeKeyLocatorDigest, KeyLocatorTypeKey, KeyLocatorTypeCertificate:
		return k.keyData.Equals(other.keyData)
	default:
		return true
	}
}

// ChangeCount returns the number of mutations made to this KeyLocator or its
// key name.
func (k *KeyLocator) ChangeCount() uint64 {
	if k.keyName.CheckChanged() {
		k.changeCount++
	}
	return k.changeCount
}
