/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"math/rand"
	"strconv"
	"strings"
)

// Child selector values.
const (
	ChildSelectorLeft  = 0
	ChildSelectorRight = 1
)

// AnswerOriginKind bits, used only by the legacy Binary XML encoding.
const (
	AnswerContentStore = 1
	AnswerGenerated    = 2
	AnswerStale        = 4
	MarkStale          = 16
)

// Interest represents an NDN Interest packet.
type Interest struct {
	name                         ChangeCounter[*Name]
	minSuffixComponents          int
	maxSuffixComponents          int
	publisherPublicKeyDigest     ChangeCounter[*PublisherPublicKeyDigest]
	keyLocator                   ChangeCounter[*KeyLocator]
	exclude                      ChangeCounter[*Exclude]
	childSelector                int
	mustBeFresh                  bool
	answerOriginKind             int
	scope                        int
	interestLifetimeMilliseconds float64
	nonce                        Blob
	getNonceChangeCount          uint64
	changeCount                  uint64
}

// NewInterest constructs an Interest with an empty name and default selectors.
func NewInterest() *Interest {
	i := new(Interest)
	i.name = NewChangeCounter(NewName())
	i.minSuffixComponents = -1
	i.maxSuffixComponents = -1
	i.publisherPublicKeyDigest = NewChangeCounter(NewPublisherPublicKeyDigest())
	i.keyLocator = NewChangeCounter(NewKeyLocator())
	i.exclude = NewChangeCounter(NewExclude())
	i.childSelector = -1
	i.answerOriginKind = -1
	i.scope = -1
	i.interestLifetimeMilliseconds = -1
	return i
}

// NewInterestWithName constructs an Interest for the specified name.
func NewInterestWithName(name *Name) *Interest {
	i := NewInterest()
	i.SetName(name)
	return i
}

// Name returns the name of the Interest. The returned name is live: mutations
// to it are seen by this Interest's change count.
func (i *Interest) Name() *Name {
	return i.name.Get()
}

// SetName sets the name of the Interest. A nil name clears it.
func (i *Interest) SetName(name *Name) {
	if name == nil {
		name = NewName()
	}
	i.name.Set(name)
	i.changeCount++
}

// MinSuffixComponents returns the MinSuffixComponents selector, or -1 if not set.
func (i *Interest) MinSuffixComponents() int {
	return i.minSuffixComponents
}

// SetMinSuffixComponents sets the MinSuffixComponents selector. A negative
// value unsets it.
func (i *Interest) SetMinSuffixComponents(minSuffixComponents int) {
	if minSuffixComponents < 0 {
		minSuffixComponents = -1
	}
	i.minSuffixComponents = minSuffixComponents
	i.changeCount++
}

// MaxSuffixComponents returns the MaxSuffixComponents selector, or -1 if not set.
func (i *Interest) MaxSuffixComponents() int {
	return i.maxSuffixComponents
}

// SetMaxSuffixComponents sets the MaxSuffixComponents selector. A negative
// value unsets it.
func (i *Interest) SetMaxSuffixComponents(maxSuffixComponents int) {
	if maxSuffixComponents < 0 {
		maxSuffixComponents = -1
	}
	i.maxSuffixComponents = maxSuffixComponents
	i.changeCount++
}

// PublisherPublicKeyDigest returns the legacy publisher public key digest
// selector. The returned object is live.
//
// Deprecated: use KeyLocator with KeyLocatorTypeKeyLocatorDigest.
func (i *Interest) PublisherPublicKeyDigest() *PublisherPublicKeyDigest {
	return i.publisherPublicKeyDigest.Get()
}

// SetPublisherPublicKeyDigest sets the legacy publisher public key digest
// selector.
//
// Deprecated: use KeyLocator with KeyLocatorTypeKeyLocatorDigest.
func (i *Interest) SetPublisherPublicKeyDigest(digest *PublisherPublicKeyDigest) {
	if digest == nil {
		digest = NewPublisherPublicKeyDigest()
	}
	i.publisherPublicKeyDigest.Set(digest)
	i.changeCount++
}

// KeyLocator returns the PublisherPublicKeyLocator selector. The returned
// object is live.
func (i *Interest) KeyLocator() *KeyLocator {
	return i.keyLocator.Get()
}

// SetKeyLocator sets the PublisherPublicKeyLocator selector. A nil locator
// clears it.
func (i *Interest) SetKeyLocator(keyLocator *KeyLocator) {
	if keyLocator == nil {
		keyLocator = NewKeyLocator()
	}
	i.keyLocator.Set(keyLocator)
	i.changeCount++
}

// Exclude returns the Exclude selector. The returned object is live.
func (i *Interest) Exclude() *Exclude {
	return i.exclude.Get()
}

// SetExclude sets the Exclude selector. A nil exclude clears it.
func (i *Interest) SetExclude(exclude *Exclude) {
	if exclude == nil {
		exclude = NewExclude()
	}
	i.exclude.Set(exclude)
	i.changeCount++
}

// ChildSelector returns the ChildSelector selector, or -1 if not set.
func (i *Interest) ChildSelector() int {
	return i.childSelector
}

// SetChildSelector sets the ChildSelector selector. A negative value unsets it.
func (i *Interest) SetChildSelector(childSelector int) {
	if childSelector < 0 {
		childSelector = -1
	}
	i.childSelector = childSelector
	i.changeCount++
}

// MustBeFresh returns whether the Interest may only be satisfied by fresh Data.
func (i *Interest) MustBeFresh() bool {
	return i.mustBeFresh
}

// SetMustBeFresh sets whether the Interest may only be satisfied by fresh Data.
func (i *Interest) SetMustBeFresh(mustBeFresh bool) {
	i.mustBeFresh = mustBeFresh
	i.changeCount++
}

// AnswerOriginKind returns the legacy answer origin kind bits, or -1 if not
// set. Only the Binary XML encoding carries this selector.
func (i *Interest) AnswerOriginKind() int {
	return i.answerOriginKind
}

// SetAnswerOriginKind sets the legacy answer origin kind bits. A negative
// value unsets it.
func (i *Interest) SetAnswerOriginKind(answerOriginKind int) {
	if answerOriginKind < 0 {
		answerOriginKind = -1
	}
	i.answerOriginKind = answerOriginKind
	i.changeCount++
}

// Scope returns the legacy scope selector, or -1 if not set. Only the Binary
// XML encoding carries this selector.
func (i *Interest) Scope() int {
	return i.scope
}

// SetScope sets the legacy scope selector. A negative value unsets it.
func (i *Interest) SetScope(scope int) {
	if scope < 0 {
		scope = -1
	}
	i.scope = scope
	i.changeCount++
}

// InterestLifetimeMilliseconds returns the Interest lifetime in milliseconds,
// or -1 if not set.
func (i *Interest) InterestLifetimeMilliseconds() float64 {
	return i.interestLifetimeMilliseconds
}

// SetInterestLifetimeMilliseconds sets the Interest lifetime in milliseconds.
// A negative value unsets it.
func (i *Interest) SetInterestLifetimeMilliseconds(milliseconds float64) {
	if milliseconds < 0 {
		milliseconds = -1
	}
	i.interestLifetimeMilliseconds = milliseconds
	i.changeCount++
}

// Nonce returns the nonce of the Interest. If the Interest was changed since
// the nonce was set, the stale nonce is cleared and a null Blob is returned;
// the next encode generates a fresh one.
func (i *Interest) Nonce() Blob {
	if i.getNonceChangeCount != i.ChangeCount() {
		i.nonce = Blob{}
		i.getNonceChangeCount = i.ChangeCount()
	}
	return i.nonce
}

// SetNonce sets the nonce of the Interest.
func (i *Interest) SetNonce(nonce Blob) {
	i.nonce = nonce
	i.changeCount++
	i.getNonceChangeCount = i.ChangeCount()
}

// refreshNonce makes sure the nonce is 4 bytes, generating a random one if
// not. Called by wire formats at encode time.
func (i *Interest) refreshNonce() Blob {
	nonce := i.Nonce()
	if nonce.Size() == 4 {
		return nonce
	}
	freshNonce := make([]byte, 4)
	rand.Read(freshNonce)
	i.SetNonce(NewBlob(freshNonce, false))
	return i.nonce
}

// MatchesName returns whether the specified Data name satisfies the Interest:
// the Interest name is a prefix, the suffix count is within the selector
// bounds, and the first suffix component is not excluded.
func (i *Interest) MatchesName(name *Name) bool {
	if !i.name.Get().PrefixOf(name) {
		return false
	}

	// The implicit digest counts as one suffix component.
	suffixCount := name.Size() + 1 - i.name.Get().Size()
	if i.minSuffixComponents >= 0 && suffixCount < i.minSuffixComponents {
		return false
	}
	if i.maxSuffixComponents >= 0 && suffixCount > i.maxSuffixComponents {
		return false
	}

	if i.exclude.Get().Size() > 0 && name.Size() > i.name.Get().Size() &&
		i.exclude.Get().Matches(name.At(i.name.Get().Size())) {
		return false
	}
	return true
}

// ToUri returns the URI form of the Interest: the name URI followed by the
// non-default selectors as query parameters.
func (i *Interest) ToUri() string {
	var selectors strings.Builder

	if i.minSuffixComponents >= 0 {
		selectors.WriteString("&ndn.MinSuffixComponents=" + strconv.Itoa(i.minSuffixComponents))
	}
	if i.maxSuffixComponents >= 0 {
		selectors.WriteString("&ndn.MaxSuffixComponents=" + strconv.Itoa(i.maxSuffixComponents))
	}
	if i.childSelector >= 0 {
		selectors.WriteString("&ndn.ChildSelector=" + strconv.Itoa(i.childSelector))
	}
	if i.answerOriginKind >= 0 {
		selectors.WriteString("&ndn.AnswerOriginKind=" + strconv.Itoa(i.answerOriginKind))
	}
	if i.scope >= 0 {
		selectors.WriteString("&ndn.Scope=" + strconv.Itoa(i.scope))
	}
	if i.interestLifetimeMilliseconds >= 0 {
		selectors.WriteString("&ndn.InterestLifetime=" +
			strconv.FormatFloat(i.interestLifetimeMilliseconds, 'f', -1, 64))
	}
	if i.publisherPublicKeyDigest.Get().Digest().Size() > 0 {
		selectors.WriteString("&ndn.PublisherPublicKeyDigest=" +
			escapeComponent(i.publisherPublicKeyDigest.Get().Digest().Bytes()))
	}
	if nonce := i.Nonce(); nonce.Size() > 0 {
		selectors.WriteString("&ndn.Nonce=" + escapeComponent(nonce.Bytes()))
	}
	if i.exclude.Get().Size() > 0 {
		selectors.WriteString("&ndn.Exclude=" + i.exclude.Get().ToUri())
	}

	out := i.name.Get().ToUri()
	if selectors.Len() > 0 {
		// Replace the first & with ?.
		out += "?" + selectors.String()[1:]
	}
	return out
}

func (i *Interest) String() string {
	return i.ToUri()
}

// Equals returns whether the two Interests hold the same name, selectors,
// nonce, and lifetime. The legacy answerOriginKind and scope selectors are not
// compared.
func (i *Interest) Equals(other *Interest) bool {
	if other == nil {
		return false
	}
	return i.name.Get().Equals(other.name.Get()) &&
		i.minSuffixComponents == other.minSuffixComponents &&
		i.maxSuffixComponents == other.maxSuffixComponents &&
		i.publisherPublicKeyDigest.Get().Digest().Equals(other.publisherPublicKeyDigest.Get().Digest()) &&
		i.keyLocator.Get().Equals(other.keyLocator.Get()) &&
		i.exclude.Get().Equals(other.exclude.Get()) &&
		i.childSelector == other.childSelector &&
		i.mustBeFresh == other.mustBeFresh &&
		i.interestLifetimeMilliseconds == other.interestLifetimeMilliseconds &&
		i.nonce.Equals(other.nonce)
}

// WireEncode encodes the Interest with the specified wire format, or the
// default wire format if none is given. The returned SignedBlob brackets the
// name components that a signed Interest's signature covers.
func (i *Interest) WireEncode(wireFormat ...WireFormat) (SignedBlob, error) {
	return pickWireFormat(wireFormat).EncodeInterest(i)
}

// WireDecode decodes the Interest from a copy of the specified bytes with the
// specified wire format, or the default wire format if none is given.
func (i *Interest) WireDecode(input []byte, wireFormat ...WireFormat) error {
	return i.WireDecodeShared(NewBlob(input, true), wireFormat...)
}

// WireDecodeShared is like WireDecode but shares the Blob's buffer instead of
// copying: decoded fields reference the buffer directly, which is safe because
// Blob buffers are immutable.
func (i *Interest) WireDecodeShared(input Blob, wireFormat ...WireFormat) error {
	_, _, err := pickWireFormat(wireFormat).DecodeInterest(i, input)
	return err
}

// ChangeCount returns the number of mutations made to this Interest or its
// children.
func (i *Interest) ChangeCount() uint64 {
	changed := i.name.CheckChanged()
	changed = i.publisherPublicKeyDigest.CheckChanged() || changed
	changed = i.keyLocator.CheckChanged() || changed
	changed = i.exclude.CheckChanged() || changed
	if changed {
		i.changeCount++
	}
	return i.changeCount
}
