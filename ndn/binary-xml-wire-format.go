/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"math"

	"github.com/peetonn/go-ndn/ndn/binaryxml"
	"github.com/peetonn/go-ndn/ndn/tlv"
)

// BinaryXmlWireFormat implements WireFormat for the legacy Binary XML (ccnb)
// encoding.
type BinaryXmlWireFormat struct{}

// NewBinaryXmlWireFormat creates a BinaryXmlWireFormat.
func NewBinaryXmlWireFormat() *BinaryXmlWireFormat {
	return &BinaryXmlWireFormat{}
}

// EncodeInterest encodes the Interest in Binary XML. If the Interest has no
// nonce, a random 4-byte nonce is generated and set on the Interest. The
// legacy answerOriginKind and scope selectors are carried by this encoding.
func (f *BinaryXmlWireFormat) EncodeInterest(interest *Interest) (SignedBlob, error) {
	nonce := interest.refreshNonce()

	encoder := binaryxml.NewEncoder()
	encoder.WriteElementStartDTag(binaryxml.DTagInterest)

	signedBegin, signedEnd := encodeBinaryXmlName(interest.Name(), encoder)

	encoder.WriteOptionalUnsignedDecimalIntDTagElement(
		binaryxml.DTagMinSuffixComponents, interest.MinSuffixComponents())
	encoder.WriteOptionalUnsignedDecimalIntDTagElement(
		binaryxml.DTagMaxSuffixComponents, interest.MaxSuffixComponents())
	if interest.PublisherPublicKeyDigest().Digest().Size() > 0 {
		encoder.WriteBlobDTagElement(
			binaryxml.DTagPublisherPublicKeyDigest, interest.PublisherPublicKeyDigest().Digest().Bytes())
	}

	if interest.Exclude().Size() > 0 {
		encoder.WriteElementStartDTag(binaryxml.DTagExclude)
		for i := 0; i < interest.Exclude().Size(); i++ {
			entry := interest.Exclude().At(i)
			if entry.Type() == ExcludeAny {
				encoder.WriteElementStartDTag(binaryxml.DTagAny)
				encoder.WriteElementClose()
			} else {
				encoder.WriteBlobDTagElement(binaryxml.DTagComponent, entry.Component().Value().Bytes())
			}
		}
		encoder.WriteElementClose()
	}

	encoder.WriteOptionalUnsignedDecimalIntDTagElement(
		binaryxml.DTagChildSelector, interest.ChildSelector())
	encoder.WriteOptionalUnsignedDecimalIntDTagElement(
		binaryxml.DTagAnswerOriginKind, interest.AnswerOriginKind())
	encoder.WriteOptionalUnsignedDecimalIntDTagElement(binaryxml.DTagScope, interest.Scope())
	encoder.WriteOptionalTimeMillisecondsDTagElement(
		binaryxml.DTagInterestLifetime, interest.InterestLifetimeMilliseconds())
	encoder.WriteBlobDTagElement(binaryxml.DTagNonce, nonce.Bytes())

	encoder.WriteElementClose()
	return NewSignedBlob(encoder.Output(), false, signedBegin, signedEnd), nil
}

// DecodeInterest decodes the Interest from Binary XML. Unknown elements are
// skipped to their close sentinel.
func (f *BinaryXmlWireFormat) DecodeInterest(interest *Interest, input Blob) (int, int, error) {
	decoder := binaryxml.NewDecoder(input.Bytes())
	if err := decoder.ReadElementStartDTag(binaryxml.DTagInterest); err != nil {
		return 0, 0, err
	}

	signedBegin, signedEnd, err := decodeBinaryXmlName(interest.Name(), input, decoder)
	if err != nil {
		return 0, 0, err
	}

	minSuffix, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagMinSuffixComponents)
	if err != nil {
		return 0, 0, err
	}
	interest.SetMinSuffixComponents(minSuffix)

	maxSuffix, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagMaxSuffixComponents)
	if err != nil {
		return 0, 0, err
	}
	interest.SetMaxSuffixComponents(maxSuffix)

	digest, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagPublisherPublicKeyDigest, false)
	if err != nil {
		return 0, 0, err
	}
	if digest != nil {
		interest.PublisherPublicKeyDigest().SetDigest(NewBlob(digest, false))
	} else {
		interest.PublisherPublicKeyDigest().Clear()
	}

	if err := decodeBinaryXmlExclude(interest.Exclude(), input, decoder); err != nil {
		return 0, 0, err
	}

	childSelector, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagChildSelector)
	if err != nil {
		return 0, 0, err
	}
	interest.SetChildSelector(childSelector)

	answerOriginKind, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagAnswerOriginKind)
	if err != nil {
		return 0, 0, err
	}
	interest.SetAnswerOriginKind(answerOriginKind)

	scope, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagScope)
	if err != nil {
		return 0, 0, err
	}
	interest.SetScope(scope)

	lifetime, err := decoder.ReadOptionalTimeMillisecondsDTagElement(binaryxml.DTagInterestLifetime)
	if err != nil {
		return 0, 0, err
	}
	interest.SetInterestLifetimeMilliseconds(lifetime)

	nonce, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagNonce, false)
	if err != nil {
		return 0, 0, err
	}

	// The selectors that only NDN-TLV carries are not on this wire.
	interest.KeyLocator().Clear()
	interest.SetMustBeFresh(false)

	if err := skipToElementClose(decoder); err != nil {
		return 0, 0, err
	}

	// Set the nonce last so that no later mutation marks it stale.
	if nonce != nil {
		interest.SetNonce(NewBlob(nonce, false))
	} else {
		interest.SetNonce(Blob{})
	}
	return signedBegin, signedEnd, nil
}

// EncodeData encodes the Data in Binary XML as a ContentObject. The signed
// portion runs from the name through the content, matching what the legacy
// wire covers.
func (f *BinaryXmlWireFormat) EncodeData(data *Data) (SignedBlob, error) {
	encoder := binaryxml.NewEncoder()
	encoder.WriteElementStartDTag(binaryxml.DTagContentObject)

	encoder.WriteElementStartDTag(binaryxml.DTagSignature)
	if data.Signature().DigestAlgorithm().Size() > 0 {
		encoder.WriteBlobDTagElement(
			binaryxml.DTagDigestAlgorithm, data.Signature().DigestAlgorithm().Bytes())
	}
	if data.Signature().Witness().Size() > 0 {
		encoder.WriteBlobDTagElement(binaryxml.DTagWitness, data.Signature().Witness().Bytes())
	}
	encoder.WriteBlobDTagElement(binaryxml.DTagSignatureBits, data.Signature().Signature().Bytes())
	encoder.WriteElementClose()

	signedBegin := encoder.Offset()
	encodeBinaryXmlName(data.Name(), encoder)

	encoder.WriteElementStartDTag(binaryxml.DTagSignedInfo)
	if data.Signature().PublisherPublicKeyDigest().Digest().Size() > 0 {
		encoder.WriteBlobDTagElement(binaryxml.DTagPublisherPublicKeyDigest,
			data.Signature().PublisherPublicKeyDigest().Digest().Bytes())
	}
	encoder.WriteOptionalTimeMillisecondsDTagElement(
		binaryxml.DTagTimestamp, data.MetaInfo().TimestampMilliseconds())
	if err := encodeBinaryXmlContentType(data.MetaInfo().ContentType(), encoder); err != nil {
		return SignedBlob{}, err
	}
	if data.MetaInfo().FreshnessPeriod() >= 0 {
		encoder.WriteUnsignedDecimalIntDTagElement(binaryxml.DTagFreshnessSeconds,
			uint64(math.Round(data.MetaInfo().FreshnessPeriod()/1000.0)))
	}
	if finalBlockID := data.MetaInfo().FinalBlockID(); finalBlockID != nil {
		encoder.WriteBlobDTagElement(binaryxml.DTagFinalBlockID, finalBlockID.Value().Bytes())
	}
	if err := encodeBinaryXmlKeyLocator(data.Signature().KeyLocator(), encoder); err != nil {
		return SignedBlob{}, err
	}
	encoder.WriteElementClose()

	encoder.WriteBlobDTagElement(binaryxml.DTagContent, data.Content().Bytes())
	signedEnd := encoder.Offset()

	encoder.WriteElementClose()
	return NewSignedBlob(encoder.Output(), false, signedBegin, signedEnd), nil
}

// DecodeData decodes the Data from a Binary XML ContentObject.
func (f *BinaryXmlWireFormat) DecodeData(data *Data, input Blob) (int, int, error) {
	decoder := binaryxml.NewDecoder(input.Bytes())
	if err := decoder.ReadElementStartDTag(binaryxml.DTagContentObject); err != nil {
		return 0, 0, err
	}

	data.Signature().Clear()
	gotSignature, err := decoder.PeekDTag(binaryxml.DTagSignature)
	if err != nil {
		return 0, 0, err
	}
	if gotSignature {
		if err := decodeBinaryXmlSignature(data.Signature(), input, decoder); err != nil {
			return 0, 0, err
		}
	}

	signedBegin := decoder.Offset()
	if _, _, err := decodeBinaryXmlName(data.Name(), input, decoder); err != nil {
		return 0, 0, err
	}

	gotSignedInfo, err := decoder.PeekDTag(binaryxml.DTagSignedInfo)
	if err != nil {
		return 0, 0, err
	}
	if gotSignedInfo {
		if err := decodeBinaryXmlSignedInfo(data, input, decoder); err != nil {
			return 0, 0, err
		}
	} else {
		data.SetMetaInfo(NewMetaInfo())
	}

	content, err := decoder.ReadBinaryDTagElement(binaryxml.DTagContent, true)
	if err != nil {
		return 0, 0, err
	}
	if content == nil {
		data.SetContent(NewBlob([]byte{}, false))
	} else {
		data.SetContent(NewBlob(content, false))
	}
	signedEnd := decoder.Offset()

	if err := skipToElementClose(decoder); err != nil {
		return 0, 0, err
	}
	return signedBegin, signedEnd, nil
}

// EncodeForwardingEntry encodes the ForwardingEntry in Binary XML.
func (f *BinaryXmlWireFormat) EncodeForwardingEntry(entry *ForwardingEntry) (Blob, error) {
	encoder := binaryxml.NewEncoder()
	encoder.WriteElementStartDTag(binaryxml.DTagForwardingEntry)

	if len(entry.Action()) > 0 {
		encoder.WriteUDataDTagElement(binaryxml.DTagAction, entry.Action())
	}
	encodeBinaryXmlName(entry.Prefix(), encoder)
	if entry.PublisherPublicKeyDigest().Digest().Size() > 0 {
		encoder.WriteBlobDTagElement(binaryxml.DTagPublisherPublicKeyDigest,
			entry.PublisherPublicKeyDigest().Digest().Bytes())
	}
	encoder.WriteOptionalUnsignedDecimalIntDTagElement(binaryxml.DTagFaceID, entry.FaceID())
	encoder.WriteUnsignedDecimalIntDTagElement(binaryxml.DTagForwardingFlags,
		uint64(entry.ForwardingFlags().ForwardingEntryFlags()))
	if entry.FreshnessPeriod() >= 0 {
		encoder.WriteUnsignedDecimalIntDTagElement(binaryxml.DTagFreshnessSeconds,
			uint64(math.Round(entry.FreshnessPeriod()/1000.0)))
	}

	encoder.WriteElementClose()
	return NewBlob(encoder.Output(), false), nil
}

// DecodeForwardingEntry decodes the ForwardingEntry from Binary XML.
func (f *BinaryXmlWireFormat) DecodeForwardingEntry(entry *ForwardingEntry, input Blob) error {
	decoder := binaryxml.NewDecoder(input.Bytes())
	if err := decoder.ReadElementStartDTag(binaryxml.DTagForwardingEntry); err != nil {
		return err
	}

	gotAction, err := decoder.PeekDTag(binaryxml.DTagAction)
	if err != nil {
		return err
	}
	if gotAction {
		action, err := decoder.ReadUDataDTagElement(binaryxml.DTagAction)
		if err != nil {
			return err
		}
		entry.SetAction(action)
	} else {
		entry.SetAction("")
	}

	if _, _, err := decodeBinaryXmlName(entry.Prefix(), input, decoder); err != nil {
		return err
	}

	digest, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagPublisherPublicKeyDigest, false)
	if err != nil {
		return err
	}
	if digest != nil {
		entry.PublisherPublicKeyDigest().SetDigest(NewBlob(digest, false))
	} else {
		entry.PublisherPublicKeyDigest().Clear()
	}

	faceID, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagFaceID)
	if err != nil {
		return err
	}
	entry.SetFaceID(faceID)

	flags, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagForwardingFlags)
	if err != nil {
		return err
	}
	forwardingFlags := NewForwardingFlags()
	if flags >= 0 {
		forwardingFlags.SetForwardingEntryFlags(flags)
	}
	entry.SetForwardingFlags(forwardingFlags)

	freshnessSeconds, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagFreshnessSeconds)
	if err != nil {
		return err
	}
	if freshnessSeconds >= 0 {
		entry.SetFreshnessPeriod(float64(freshnessSeconds) * 1000.0)
	} else {
		entry.SetFreshnessPeriod(-1)
	}

	return skipToElementClose(decoder)
}

// encodeBinaryXmlName writes the Name element and returns the offsets of the
// signed name components, analogous to the TLV encoding: from the first
// component element to the beginning of the final one. Component type tags are
// not representable in Binary XML, so only the values are written.
func encodeBinaryXmlName(name *Name, encoder *binaryxml.Encoder) (int, int) {
	encoder.WriteElementStartDTag(binaryxml.DTagName)
	signedBegin := encoder.Offset()
	signedEnd := encoder.Offset()
	for i := 0; i < name.Size(); i++ {
		if i == name.Size()-1 {
			signedEnd = encoder.Offset()
		}
		encoder.WriteBlobDTagElement(binaryxml.DTagComponent, name.At(i).Value().Bytes())
	}
	encoder.WriteElementClose()
	return signedBegin, signedEnd
}

// decodeBinaryXmlName reads the Name element into name, returning the offsets
// of the signed name components in the input buffer. Every component decodes
// as a GenericNameComponent.
func decodeBinaryXmlName(name *Name, input Blob, decoder *binaryxml.Decoder) (int, int, error) {
	if err := decoder.ReadElementStartDTag(binaryxml.DTagName); err != nil {
		return 0, 0, err
	}

	name.Clear()
	signedBegin := decoder.Offset()
	signedEnd := decoder.Offset()
	for {
		gotComponent, err := decoder.PeekDTag(binaryxml.DTagComponent)
		if err != nil {
			return 0, 0, err
		}
		if !gotComponent {
			break
		}
		signedEnd = decoder.Offset()
		value, err := decoder.ReadBinaryDTagElement(binaryxml.DTagComponent, true)
		if err != nil {
			return 0, 0, err
		}
		name.Append(NameComponent{value: NewBlob(value, false), tlvType: tlv.GenericNameComponent})
	}

	if err := decoder.ReadElementClose(); err != nil {
		return 0, 0, err
	}
	return signedBegin, signedEnd, nil
}

func decodeBinaryXmlExclude(exclude *Exclude, input Blob, decoder *binaryxml.Decoder) error {
	exclude.Clear()
	gotExclude, err := decoder.PeekDTag(binaryxml.DTagExclude)
	if err != nil {
		return err
	}
	if !gotExclude {
		return nil
	}

	if err := decoder.ReadElementStartDTag(binaryxml.DTagExclude); err != nil {
		return err
	}
	for !decoder.PeekElementClose() {
		gotAny, err := decoder.PeekDTag(binaryxml.DTagAny)
		if err != nil {
			return err
		}
		if gotAny {
			if err := decoder.ReadElementStartDTag(binaryxml.DTagAny); err != nil {
				return err
			}
			if err := decoder.ReadElementClose(); err != nil {
				return err
			}
			exclude.AppendAny()
			continue
		}

		gotComponent, err := decoder.PeekDTag(binaryxml.DTagComponent)
		if err != nil {
			return err
		}
		if gotComponent {
			value, err := decoder.ReadBinaryDTagElement(binaryxml.DTagComponent, true)
			if err != nil {
				return err
			}
			exclude.AppendComponent(NameComponent{value: NewBlob(value, false), tlvType: tlv.GenericNameComponent})
			continue
		}

		// A Bloom or other unknown entry; skip it.
		if err := decoder.SkipElement(); err != nil {
			return err
		}
	}
	return decoder.ReadElementClose()
}

func decodeBinaryXmlSignature(signature *Signature, input Blob, decoder *binaryxml.Decoder) error {
	if err := decoder.ReadElementStartDTag(binaryxml.DTagSignature); err != nil {
		return err
	}

	// The legacy wire does not name its algorithm; Sha256WithRsa is implied.
	signature.SetType(SignatureTypeSha256WithRsa)

	digestAlgorithm, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagDigestAlgorithm, false)
	if err != nil {
		return err
	}
	if digestAlgorithm != nil {
		signature.SetDigestAlgorithm(NewBlob(digestAlgorithm, false))
	}

	witness, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagWitness, false)
	if err != nil {
		return err
	}
	if witness != nil {
		signature.SetWitness(NewBlob(witness, false))
	}

	signatureBits, err := decoder.ReadBinaryDTagElement(binaryxml.DTagSignatureBits, true)
	if err != nil {
		return err
	}
	signature.SetSignature(NewBlob(signatureBits, false))

	return skipToElementClose(decoder)
}

func decodeBinaryXmlSignedInfo(data *Data, input Blob, decoder *binaryxml.Decoder) error {
	if err := decoder.ReadElementStartDTag(binaryxml.DTagSignedInfo); err != nil {
		return err
	}

	digest, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagPublisherPublicKeyDigest, false)
	if err != nil {
		return err
	}
	if digest != nil {
		data.Signature().PublisherPublicKeyDigest().SetDigest(NewBlob(digest, false))
	}

	timestamp, err := decoder.ReadOptionalTimeMillisecondsDTagElement(binaryxml.DTagTimestamp)
	if err != nil {
		return err
	}
	data.MetaInfo().SetTimestampMilliseconds(timestamp)

	if err := decodeBinaryXmlContentType(data.MetaInfo(), decoder); err != nil {
		return err
	}

	freshnessSeconds, err := decoder.ReadOptionalUnsignedIntegerDTagElement(binaryxml.DTagFreshnessSeconds)
	if err != nil {
		return err
	}
	if freshnessSeconds >= 0 {
		data.MetaInfo().SetFreshnessPeriod(float64(freshnessSeconds) * 1000.0)
	} else {
		data.MetaInfo().SetFreshnessPeriod(-1)
	}

	finalBlockID, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagFinalBlockID, true)
	if err != nil {
		return err
	}
	if finalBlockID != nil {
		component := NameComponent{value: NewBlob(finalBlockID, false), tlvType: tlv.GenericNameComponent}
		data.MetaInfo().SetFinalBlockID(&component)
	} else {
		data.MetaInfo().SetFinalBlockID(nil)
	}

	gotKeyLocator, err := decoder.PeekDTag(binaryxml.DTagKeyLocator)
	if err != nil {
		return err
	}
	if gotKeyLocator {
		if err := decodeBinaryXmlKeyLocator(data.Signature().KeyLocator(), input, decoder); err != nil {
			return err
		}
	}

	return skipToElementClose(decoder)
}

func encodeBinaryXmlContentType(contentType ContentType, encoder *binaryxml.Encoder) error {
	var value []byte
	switch contentType {
	case ContentTypeBlob:
		// BLOB (legacy DATA) is the default and stays off the wire.
		return nil
	case ContentTypeKey:
		value = binaryxml.ContentTypeKeyBytes
	case ContentTypeLink:
		value = binaryxml.ContentTypeLinkBytes
	default:
		return ErrUnrecognizedContentType
	}
	encoder.WriteBlobDTagElement(binaryxml.DTagType, value)
	return nil
}

func decodeBinaryXmlContentType(metaInfo *MetaInfo, decoder *binaryxml.Decoder) error {
	value, err := decoder.ReadOptionalBinaryDTagElement(binaryxml.DTagType, false)
	if err != nil {
		return err
	}
	if value == nil {
		metaInfo.SetContentType(ContentTypeBlob)
		return nil
	}

	switch {
	case bytes.Equal(value, binaryxml.ContentTypeDataBytes):
		metaInfo.SetContentType(ContentTypeBlob)
	case bytes.Equal(value, binaryxml.ContentTypeKeyBytes):
		metaInfo.SetContentType(ContentTypeKey)
	case bytes.Equal(value, binaryxml.ContentTypeLinkBytes):
		metaInfo.SetContentType(ContentTypeLink)
	default:
		return ErrUnrecognizedContentType
	}
	return nil
}

func encodeBinaryXmlKeyLocator(keyLocator *KeyLocator, encoder *binaryxml.Encoder) error {
	switch keyLocator.Type() {
	case KeyLocatorTypeNone, KeyLocatorTypeKeyLocatorDigest:
		// A bare digest has no Binary XML representation; it travels in the
		// PublisherPublicKeyDigest instead.
		return nil
	case KeyLocatorTypeKey:
		encoder.WriteElementStartDTag(binaryxml.DTagKeyLocator)
		encoder.WriteBlobDTagElement(binaryxml.DTagKey, keyLocator.KeyData().Bytes())
		encoder.WriteElementClose()
	case KeyLocatorTypeCertificate:
		encoder.WriteElementStartDTag(binaryxml.DTagKeyLocator)
		encoder.WriteBlobDTagElement(binaryxml.DTagCertificate, keyLocator.KeyData().Bytes())
		encoder.WriteElementClose()
	case KeyLocatorTypeKeyName:
		encoder.WriteElementStartDTag(binaryxml.DTagKeyLocator)
		encoder.WriteElementStartDTag(binaryxml.DTagKeyName)
		encodeBinaryXmlName(keyLocator.KeyName(), encoder)
		if keyLocator.KeyNameType() != KeyNameTypeNone && keyLocator.KeyNameDigest().Size() > 0 {
			encoder.WriteBlobDTagElement(
				keyNameDigestDTag(keyLocator.KeyNameType()), keyLocator.KeyNameDigest().Bytes())
		}
		encoder.WriteElementClose()
		encoder.WriteElementClose()
	default:
		return ErrUnrecognizedKeyLocator
	}
	return nil
}

func keyNameDigestDTag(keyNameType KeyNameType) uint64 {
	switch keyNameType {
	case KeyNameTypePublisherCertificateDigest:
		return binaryxml.DTagPublisherCertificateDigest
	case KeyNameTypePublisherIssuerKeyDigest:
		return binaryxml.DTagPublisherIssuerKeyDigest
	case KeyNameTypePublisherIssuerCertificateDigest:
		return binaryxml.DTagPublisherIssuerCertificateDigest
	default:
		return binaryxml.DTagPublisherPublicKeyDigest
	}
}

func decodeBinaryXmlKeyLocator(keyLocator *KeyLocator, input Blob, decoder *binaryxml.Decoder) error {
	if err := decoder.ReadElementStartDTag(binaryxml.DTagKeyLocator); err != nil {
		return err
	}
	keyLocator.Clear()

	gotKey, err := decoder.PeekDTag(binaryxml.DTagKey)
	if err != nil {
		return err
	}
	gotCertificate, err := decoder.PeekDTag(binaryxml.DTagCertificate)
	if err != nil {
		return err
	}
	gotKeyName, err := decoder.PeekDTag(binaryxml.DTagKeyName)
	if err != nil {
		return err
	}

	switch {
	case gotKey:
		value, err := decoder.ReadBinaryDTagElement(binaryxml.DTagKey, true)
		if err != nil {
			return err
		}
		keyLocator.SetType(KeyLocatorTypeKey)
		keyLocator.SetKeyData(NewBlob(value, false))
	case gotCertificate:
		value, err := decoder.ReadBinaryDTagElement(binaryxml.DTagCertificate, true)
		if err != nil {
			return err
		}
		keyLocator.SetType(KeyLocatorTypeCertificate)
		keyLocator.SetKeyData(NewBlob(value, false))
	case gotKeyName:
		if err := decoder.ReadElementStartDTag(binaryxml.DTagKeyName); err != nil {
			return err
		}
		keyName := NewName()
		if _, _, err := decodeBinaryXmlName(keyName, input, decoder); err != nil {
			return err
		}
		keyLocator.SetType(KeyLocatorTypeKeyName)
		keyLocator.SetKeyName(keyName)
		if err := decodeBinaryXmlKeyNameDigest(keyLocator, input, decoder); err != nil {
			return err
		}
		if err := skipToElementClose(decoder); err != nil {
			return err
		}
	default:
		return ErrUnrecognizedKeyLocator
	}

	return skipToElementClose(decoder)
}

func decodeBinaryXmlKeyNameDigest(keyLocator *KeyLocator, input Blob, decoder *binaryxml.Decoder) error {
	digestTags := []struct {
		tag         uint64
		keyNameType KeyNameType
	}{
		{binaryxml.DTagPublisherPublicKeyDigest, KeyNameTypePublisherPublicKeyDigest},
		{binaryxml.DTagPublisherCertificateDigest, KeyNameTypePublisherCertificateDigest},
		{binaryxml.DTagPublisherIssuerKeyDigest, KeyNameTypePublisherIssuerKeyDigest},
		{binaryxml.DTagPublisherIssuerCertificateDigest, KeyNameTypePublisherIssuerCertificateDigest},
	}
	for _, digestTag := range digestTags {
		gotTag, err := decoder.PeekDTag(digestTag.tag)
		if err != nil {
			return err
		}
		if gotTag {
			value, err := decoder.ReadBinaryDTagElement(digestTag.tag, false)
			if err != nil {
				return err
			}
			keyLocator.SetKeyNameType(digestTag.keyNameType)
			keyLocator.SetKeyNameDigest(NewBlob(value, false))
			return nil
		}
	}
	return nil
}

// skipToElementClose skips any remaining elements, including unknown DTAGs,
// then consumes the element close sentinel.
func skipToElementClose(decoder *binaryxml.Decoder) error {
	for !decoder.PeekElementClose() {
		if err := decoder.SkipElement(); err != nil {
			return err
		}
	}
	return decoder.ReadElementClose()
}
