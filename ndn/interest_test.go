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

func TestInterestEncodeMinimal(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.SetNonce(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, false))

	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		tlv.Interest, 0x0B,
		tlv.Name, 0x03, tlv.GenericNameComponent, 0x01, 0x61,
		tlv.Nonce, 0x04, 0x01, 0x02, 0x03, 0x04}, encoding.Bytes())
}

func TestInterestDecodeMinimal(t *testing.T) {
	wire := []byte{
		tlv.Interest, 0x0B,
		tlv.Name, 0x03, tlv.GenericNameComponent, 0x01, 0x61,
		tlv.Nonce, 0x04, 0x01, 0x02, 0x03, 0x04}

	i := ndn.NewInterest()
	assert.NoError(t, i.WireDecode(wire, ndn.NewTlvWireFormat()))
	assert.Equal(t, "ndn:/a", i.Name().ToUri())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, i.Nonce().Bytes())
	assert.Equal(t, -1, i.MinSuffixComponents())
	assert.Equal(t, -1, i.MaxSuffixComponents())
	assert.Equal(t, -1, i.ChildSelector())
	assert.False(t, i.MustBeFresh())
	assert.Equal(t, float64(-1), i.InterestLifetimeMilliseconds())

	// Idempotent re-encode of a canonical encoding.
	reEncoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, wire, reEncoding.Bytes())
}

func TestInterestSelectorsAscendingOrder(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.SetMinSuffixComponents(2)
	i.SetMaxSuffixComponents(5)
	i.SetChildSelector(ndn.ChildSelectorRight)
	i.SetMustBeFresh(true)
	i.SetNonce(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, false))

	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		tlv.Interest, 0x18,
		tlv.Name, 0x03, tlv.GenericNameComponent, 0x01, 0x61,
		tlv.Selectors, 0x0B,
		tlv.MinSuffixComponents, 0x01, 0x02,
		tlv.MaxSuffixComponents, 0x01, 0x05,
		tlv.ChildSelector, 0x01, 0x01,
		tlv.MustBeFresh, 0x00,
		tlv.Nonce, 0x04, 0x01, 0x02, 0x03, 0x04}, encoding.Bytes())

	decoded := ndn.NewInterest()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.True(t, i.Equals(decoded))
}

func TestInterestSelectorsAnyOrderDecode(t *testing.T) {
	// The same selectors as above but deliberately out of order.
	wire := []byte{
		tlv.Interest, 0x18,
		tlv.Name, 0x03, tlv.GenericNameComponent, 0x01, 0x61,
		tlv.Selectors, 0x0B,
		tlv.MustBeFresh, 0x00,
		tlv.ChildSelector, 0x01, 0x01,
		tlv.MaxSuffixComponents, 0x01, 0x05,
		tlv.MinSuffixComponents, 0x01, 0x02,
		tlv.Nonce, 0x04, 0x01, 0x02, 0x03, 0x04}

	i := ndn.NewInterest()
	assert.NoError(t, i.WireDecode(wire, ndn.NewTlvWireFormat()))
	assert.Equal(t, 2, i.MinSuffixComponents())
	assert.Equal(t, 5, i.MaxSuffixComponents())
	assert.Equal(t, ndn.ChildSelectorRight, i.ChildSelector())
	assert.True(t, i.MustBeFresh())
}

func TestInterestLifetimeAndExcludeRoundTrip(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.SetInterestLifetimeMilliseconds(4000)
	i.Exclude().AppendAny()
	i.Exclude().AppendComponent(ndn.NewGenericNameComponent([]byte("zz")))
	i.SetNonce(ndn.NewBlob([]byte{0xAA, 0xBB, 0xCC, 0xDD}, false))

	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	decoded := ndn.NewInterest()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.True(t, i.Equals(decoded))
	assert.Equal(t, float64(4000), decoded.InterestLifetimeMilliseconds())
	assert.Equal(t, 2, decoded.Exclude().Size())
}

func TestInterestKeyLocatorRoundTrip(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.KeyLocator().SetType(ndn.KeyLocatorTypeKeyName)
	i.KeyLocator().KeyName().AppendString("key").AppendString("name")
	i.SetNonce(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, false))

	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	decoded := ndn.NewInterest()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.Equal(t, ndn.KeyLocatorTypeKeyName, decoded.KeyLocator().Type())
	assert.Equal(t, "ndn:/key/name", decoded.KeyLocator().KeyName().ToUri())
	assert.True(t, i.Equals(decoded))
}

func TestInterestPublisherPublicKeyDigestFoldsIntoKeyLocator(t *testing.T) {
	digest := make([]byte, 32)
	for j := range digest {
		digest[j] = 0x42
	}
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.PublisherPublicKeyDigest().SetDigest(ndn.NewBlob(digest, true))
	i.SetNonce(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, false))

	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	decoded := ndn.NewInterest()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.Equal(t, ndn.KeyLocatorTypeKeyLocatorDigest, decoded.KeyLocator().Type())
	assert.Equal(t, digest, decoded.KeyLocator().KeyData().Bytes())
}

func TestInterestNonceAutoGenerated(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	assert.True(t, i.Nonce().IsNull())

	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)
	assert.Equal(t, 4, i.Nonce().Size())

	// The generated nonce is on the wire.
	decoded := ndn.NewInterest()
	assert.NoError(t, decoded.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))
	assert.True(t, i.Nonce().Equals(decoded.Nonce()))
}

func TestInterestNonceClearedByChange(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.SetNonce(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, false))
	assert.Equal(t, 4, i.Nonce().Size())

	// Changing the Interest makes the nonce stale.
	i.SetChildSelector(1)
	assert.True(t, i.Nonce().IsNull())
}

func TestInterestToUriSelectors(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a")
	i.SetMinSuffixComponents(2)
	i.SetChildSelector(1)
	i.SetScope(1)
	i.SetInterestLifetimeMilliseconds(4000)
	i.Exclude().AppendAny()
	i.Exclude().AppendComponent(ndn.NewGenericNameComponent([]byte("b")))
	// Set the nonce last so no later mutation marks it stale.
	i.SetNonce(ndn.NewBlob([]byte{0x61, 0x62, 0x63, 0x64}, false))

	assert.Equal(t,
		"ndn:/a?ndn.MinSuffixComponents=2&ndn.ChildSelector=1&ndn.Scope=1"+
			"&ndn.InterestLifetime=4000&ndn.Nonce=abcd&ndn.Exclude=*,b",
		i.ToUri())

	// Defaults emit no selectors at all.
	plain := ndn.NewInterest()
	plain.Name().AppendString("a")
	assert.Equal(t, "ndn:/a", plain.ToUri())
}

func TestInterestMatchesName(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("a").AppendString("b")

	name, _ := ndn.NameFromUri("/a/b/v1")
	assert.True(t, i.MatchesName(name))

	mismatch, _ := ndn.NameFromUri("/a/c")
	assert.False(t, i.MatchesName(mismatch))

	// Suffix bounds count the implicit digest component.
	i.SetMinSuffixComponents(3)
	assert.False(t, i.MatchesName(name))
	i.SetMinSuffixComponents(2)
	assert.True(t, i.MatchesName(name))
	i.SetMaxSuffixComponents(1)
	assert.False(t, i.MatchesName(name))

	// An excluded next component rejects the name.
	i.SetMaxSuffixComponents(-1)
	i.Exclude().AppendComponent(ndn.NewGenericNameComponent([]byte("v1")))
	assert.False(t, i.MatchesName(name))
}

func TestInterestChangeCountMonotonic(t *testing.T) {
	i := ndn.NewInterest()
	before := i.ChangeCount()
	i.SetChildSelector(1)
	afterSetter := i.ChangeCount()
	assert.Greater(t, afterSetter, before)

	// A mutation of a nested child is visible at the parent.
	i.KeyLocator().KeyName().AppendString("k")
	afterChild := i.ChangeCount()
	assert.Greater(t, afterChild, afterSetter)

	// Observations do not move the counter.
	_ = i.MustBeFresh()
	_ = i.ToUri()
	assert.Equal(t, afterChild, i.ChangeCount())
}

func TestInterestZeroCopyDecode(t *testing.T) {
	i := ndn.NewInterest()
	i.Name().AppendString("zero").AppendString("copy")
	i.SetNonce(ndn.NewBlob([]byte{0x01, 0x02, 0x03, 0x04}, false))
	encoding, err := i.WireEncode(ndn.NewTlvWireFormat())
	assert.NoError(t, err)

	shared := ndn.NewInterest()
	assert.NoError(t, shared.WireDecodeShared(encoding.Blob, ndn.NewTlvWireFormat()))
	copied := ndn.NewInterest()
	assert.NoError(t, copied.WireDecode(encoding.Bytes(), ndn.NewTlvWireFormat()))

	assert.True(t, shared.Equals(copied))
	assert.True(t, shared.Equals(i))
}
