/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// ForwardingEntry represents a legacy prefix registration request sent to a
// forwarder. Only the Binary XML encoding represents ForwardingEntries.
type ForwardingEntry struct {
	action                   string
	prefix                   ChangeCounter[*Name]
	publisherPublicKeyDigest ChangeCounter[*PublisherPublicKeyDigest]
	faceID                   int
	forwardingFlags          ForwardingFlags
	freshnessPeriod          float64
	changeCount              uint64
}

// NewForwardingEntry constructs a ForwardingEntry with an empty prefix,
// default flags, and no face ID.
func NewForwardingEntry() *ForwardingEntry {
	e := new(ForwardingEntry)
	e.prefix = NewChangeCounter(NewName())
	e.publisherPublicKeyDigest = NewChangeCounter(NewPublisherPublicKeyDigest())
	e.faceID = -1
	e.forwardingFlags = NewForwardingFlags()
	e.freshnessPeriod = -1
	return e
}

// Action returns the action, such as "prefixreg" or "unreg".
func (e *ForwardingEntry) Action() string {
	return e.action
}

// SetAction sets the action.
func (e *ForwardingEntry) SetAction(action string) {
	e.action = action
	e.changeCount++
}

// Prefix returns the name prefix the entry applies to. The returned name is
// live: mutations to it are seen by this entry's change count.
func (e *ForwardingEntry) Prefix() *Name {
	return e.prefix.Get()
}

// SetPrefix sets the name prefix the entry applies to. A nil name clears it.
func (e *ForwardingEntry) SetPrefix(prefix *Name) {
	if prefix == nil {
		prefix = NewName()
	}
	e.prefix.Set(prefix)
	e.changeCount++
}

// PublisherPublicKeyDigest returns the publisher public key digest. The
// returned object is live.
func (e *ForwardingEntry) PublisherPublicKeyDigest() *PublisherPublicKeyDigest {
	return e.publisherPublicKeyDigest.Get()
}

// SetPublisherPublicKeyDigest sets the publisher public key digest.
func (e *ForwardingEntry) SetPublisherPublicKeyDigest(digest *PublisherPublicKeyDigest) {
	if digest == nil {
		digest = NewPublisherPublicKeyDigest()
	}
	e.publisherPublicKeyDigest.Set(digest)
	e.changeCount++
}

// FaceID returns the face ID, or -1 if not set.
func (e *ForwardingEntry) FaceID() int {
	return e.faceID
}

// SetFaceID sets the face ID. A negative value unsets it.
func (e *ForwardingEntry) SetFaceID(faceID int) {
	if faceID < 0 {
		faceID = -1
	}
	e.faceID = faceID
	e.changeCount++
}

// ForwardingFlags returns the flags of the entry.
func (e *ForwardingEntry) ForwardingFlags() ForwardingFlags {
	return e.forwardingFlags
}

// SetForwardingFlags sets the flags of the entry.
func (e *ForwardingEntry) SetForwardingFlags(flags ForwardingFlags) {
	e.forwardingFlags = flags
	e.changeCount++
}

// FreshnessPeriod returns the freshness period in milliseconds, or -1 if not
// set.
func (e *ForwardingEntry) FreshnessPeriod() float64 {
	return e.freshnessPeriod
}

// SetFreshnessPeriod sets the freshness period in milliseconds. A negative
// value unsets it.
func (e *ForwardingEntry) SetFreshnessPeriod(milliseconds float64) {
	if milliseconds < 0 {
		milliseconds = -1
	}
	e.freshnessPeriod = milliseconds
	e.changeCount++
}

// WireEncode encodes the entry with the specified wire format, or the default
// wire format if none is given.
func (e *ForwardingEntry) WireEncode(wireFormat ...WireFormat) (Blob, error) {
	return pickWireFormat(wireFormat).EncodeForwardingEntry(e)
}

// WireDecode decodes the entry from a copy of the specified bytes with the
// specified wire format, or the default wire format if none is given.
func (e *ForwardingEntry) WireDecode(input []byte, wireFormat ...WireFormat) error {
	return e.WireDecodeShared(NewBlob(input, true), wireFormat...)
}

// WireDecodeShared is like WireDecode but shares the Blob's buffer instead of
// copying.
func (e *ForwardingEntry) WireDecodeShared(input Blob, wireFormat ...WireFormat) error {
	return pickWireFormat(wireFormat).DecodeForwardingEntry(e, input)
}

// ChangeCount returns the number of mutations made to this entry or its
// children.
func (e *ForwardingEntry) ChangeCount() uint64 {
	changed := e.prefix.CheckChanged()
	changed = e.publisherPublicKeyDigest.CheckChanged() || changed
	if changed {
		e.changeCount++
	}
	return e.changeCount
}
