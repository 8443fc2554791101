/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"github.com/peetonn/go-ndn/ndn/tlv"
)

// TlvWireFormat implements WireFormat for the NDN-TLV encoding.
type TlvWireFormat struct{}

// NewTlvWireFormat creates a TlvWireFormat.
func NewTlvWireFormat() *TlvWireFormat {
	return &TlvWireFormat{}
}

// EncodeInterest encodes the Interest in NDN-TLV. If the Interest has no
// nonce, a random 4-byte nonce is generated and set on the Interest. The
// returned SignedBlob brackets the name components covered by a signed
// Interest's signature: every component except the final one.
func (f *TlvWireFormat) EncodeInterest(interest *Interest) (SignedBlob, error) {
	nonce := interest.refreshNonce()

	encoder := tlv.NewEncoder()
	signedBegin, signedEnd := 0, 0
	err := encoder.WriteNestedTlv(tlv.Interest, func(e *tlv.Encoder) error {
		var err error
		signedBegin, signedEnd, err = encodeTlvName(interest.Name(), e)
		if err != nil {
			return err
		}
		if err := e.WriteNestedTlv(tlv.Selectors, func(e *tlv.Encoder) error {
			return encodeTlvSelectorsValue(interest, e)
		}, true); err != nil {
			return err
		}
		e.WriteBlobTlv(tlv.Nonce, nonce.Bytes())
		e.WriteOptionalNonNegativeIntegerTlvFromFloat64(
			tlv.InterestLifetime, interest.InterestLifetimeMilliseconds())
		return nil
	}, false)
	if err != nil {
		return SignedBlob{}, err
	}
	return NewSignedBlob(encoder.Output(), false, signedBegin, signedEnd), nil
}

// DecodeInterest decodes the Interest from NDN-TLV, accepting the Selectors
// sub-elements in any order. The returned offsets bracket the signed name
// components in the input buffer.
func (f *TlvWireFormat) DecodeInterest(interest *Interest, input Blob) (int, int, error) {
	decoder := tlv.NewDecoder(input.Bytes())
	endOffset, err := decoder.ReadNestedTlvsStart(tlv.Interest)
	if err != nil {
		return 0, 0, err
	}

	signedBegin, signedEnd, err := decodeTlvName(interest.Name(), input, decoder)
	if err != nil {
		return 0, 0, err
	}

	gotSelectors, err := decoder.PeekType(tlv.Selectors, endOffset)
	if err != nil {
		return 0, 0, err
	}
	if gotSelectors {
		if err := decodeTlvSelectors(interest, input, decoder); err != nil {
			return 0, 0, err
		}
	} else {
		interest.SetMinSuffixComponents(-1)
		interest.SetMaxSuffixComponents(-1)
		interest.PublisherPublicKeyDigest().Clear()
		interest.KeyLocator().Clear()
		interest.Exclude().Clear()
		interest.SetChildSelector(-1)
		interest.SetMustBeFresh(false)
	}

	nonce, err := decoder.ReadBlobTlv(tlv.Nonce)
	if err != nil {
		return 0, 0, err
	}

	lifetime, err := decoder.ReadOptionalNonNegativeIntegerTlvAsFloat64(tlv.InterestLifetime, endOffset)
	if err != nil {
		return 0, 0, err
	}
	interest.SetInterestLifetimeMilliseconds(lifetime)

	// The ForwardingHint is not part of the packet model; skip it if present.
	if err := decoder.SkipOptionalTlv(tlv.ForwardingHint, endOffset); err != nil {
		return 0, 0, err
	}

	if err := decoder.FinishNestedTlvs(endOffset); err != nil {
		return 0, 0, err
	}

	// Set the nonce last so that no later mutation marks it stale.
	interest.SetNonce(NewBlob(nonce, false))
	return signedBegin, signedEnd, nil
}

// EncodeData encodes the Data in NDN-TLV. The returned SignedBlob brackets
// the signed portion: the bytes from the name through the signature info.
func (f *TlvWireFormat) EncodeData(data *Data) (SignedBlob, error) {
	encoder := tlv.NewEncoder()
	signedBegin, signedEnd := 0, 0
	err := encoder.WriteNestedTlv(tlv.Data, func(e *tlv.Encoder) error {
		signedBegin = e.Offset()
		if _, _, err := encodeTlvName(data.Name(), e); err != nil {
			return err
		}
		if err := e.WriteNestedTlv(tlv.MetaInfo, func(e *tlv.Encoder) error {
			return encodeTlvMetaInfoValue(data.MetaInfo(), e)
		}, false); err != nil {
			return err
		}
		e.WriteBlobTlv(tlv.Content, data.Content().Bytes())
		if err := encodeTlvSignatureInfo(data.Signature(), e); err != nil {
			return err
		}
		signedEnd = e.Offset()
		e.WriteBlobTlv(tlv.SignatureValue, data.Signature().Signature().Bytes())
		return nil
	}, false)
	if err != nil {
		return SignedBlob{}, err
	}
	return NewSignedBlob(encoder.Output(), false, signedBegin, signedEnd), nil
}

// DecodeData decodes the Data from NDN-TLV. The returned offsets bracket the
// signed portion in the input buffer.
func (f *TlvWireFormat) DecodeData(data *Data, input Blob) (int, int, error) {
	decoder := tlv.NewDecoder(input.Bytes())
	endOffset, err := decoder.ReadNestedTlvsStart(tlv.Data)
	if err != nil {
		return 0, 0, err
	}

	signedBegin := decoder.Offset()

	if _, _, err := decodeTlvName(data.Name(), input, decoder); err != nil {
		return 0, 0, err
	}
	if err := decodeTlvMetaInfo(data.MetaInfo(), input, decoder, endOffset); err != nil {
		return 0, 0, err
	}

	content, err := decoder.ReadOptionalBlobTlv(tlv.Content, endOffset)
	if err != nil {
		return 0, 0, err
	}
	if content == nil {
		data.SetContent(Blob{})
	} else {
		data.SetContent(shareBlobRange(input, content))
	}

	if err := decodeTlvSignatureInfo(data.Signature(), input, decoder); err != nil {
		return 0, 0, err
	}

	signedEnd := decoder.Offset()

	signatureValue, err := decoder.ReadBlobTlv(tlv.SignatureValue)
	if err != nil {
		return 0, 0, err
	}
	data.Signature().SetSignature(shareBlobRange(input, signatureValue))

	if err := decoder.FinishNestedTlvs(endOffset); err != nil {
		return 0, 0, err
	}
	return signedBegin, signedEnd, nil
}

// EncodeForwardingEntry returns ErrUnsupportedOperation: NDN-TLV has no
// ForwardingEntry representation.
func (f *TlvWireFormat) EncodeForwardingEntry(entry *ForwardingEntry) (Blob, error) {
	return Blob{}, ErrUnsupportedOperation
}

// DecodeForwardingEntry returns ErrUnsupportedOperation: NDN-TLV has no
// ForwardingEntry representation.
func (f *TlvWireFormat) DecodeForwardingEntry(entry *ForwardingEntry, input Blob) error {
	return ErrUnsupportedOperation
}

// shareBlobRange wraps a sub-slice of the decoder input in a Blob that shares
// the input's buffer, preserving zero-copy decoding.
func shareBlobRange(input Blob, value []byte) Blob {
	return NewBlob(value, false)
}

// encodeTlvName writes the Name TLV and returns the offsets of the signed
// name components: from the first component to the beginning of the final
// component, which a signed Interest's signature covers.
func encodeTlvName(name *Name, encoder *tlv.Encoder) (int, int, error) {
	signedBegin, signedEnd := 0, 0
	err := encoder.WriteNestedTlv(tlv.Name, func(e *tlv.Encoder) error {
		signedBegin = e.Offset()
		signedEnd = e.Offset()
		for i := 0; i < name.Size(); i++ {
			component := name.At(i)
			if i == name.Size()-1 {
				signedEnd = e.Offset()
			}
			e.WriteBlobTlv(component.Type(), component.Value().Bytes())
		}
		return nil
	}, false)
	return signedBegin, signedEnd, err
}

// decodeTlvName reads the Name TLV into name, returning the offsets of the
// signed name components in the input buffer.
func decodeTlvName(name *Name, input Blob, decoder *tlv.Decoder) (int, int, error) {
	endOffset, err := decoder.ReadNestedTlvsStart(tlv.Name)
	if err != nil {
		return 0, 0, err
	}

	name.Clear()
	signedBegin := decoder.Offset()
	signedEnd := decoder.Offset()
	for decoder.Offset() < endOffset {
		signedEnd = decoder.Offset()
		typeCode, err := decoder.PeekTypeCode()
		if err != nil {
			return 0, 0, err
		}
		value, err := decoder.ReadBlobTlv(typeCode)
		if err != nil {
			return 0, 0, err
		}
		component, err := NewNameComponentFromBlob(typeCode, shareBlobRange(input, value))
		if err != nil {
			return 0, 0, err
		}
		name.Append(component)
	}

	if err := decoder.FinishNestedTlvs(endOffset); err != nil {
		return 0, 0, err
	}
	return signedBegin, signedEnd, nil
}

// encodeTlvSelectorsValue writes the Selectors sub-elements in ascending type
// order. Writing nothing at all makes the enclosing nested TLV omit the
// Selectors block entirely.
func encodeTlvSelectorsValue(interest *Interest, e *tlv.Encoder) error {
	e.WriteOptionalNonNegativeIntegerTlv(tlv.MinSuffixComponents, interest.MinSuffixComponents())
	e.WriteOptionalNonNegativeIntegerTlv(tlv.MaxSuffixComponents, interest.MaxSuffixComponents())

	if interest.KeyLocator().Type() != KeyLocatorTypeNone {
		if err := encodeTlvKeyLocator(tlv.PublisherPublicKeyLocator, interest.KeyLocator(), e); err != nil {
			return err
		}
	} else if interest.PublisherPublicKeyDigest().Digest().Size() > 0 {
		// Fold the legacy digest into a PublisherPublicKeyLocator.
		if err := e.WriteNestedTlv(tlv.PublisherPublicKeyLocator, func(e *tlv.Encoder) error {
			e.WriteBlobTlv(tlv.KeyLocatorDigest, interest.PublisherPublicKeyDigest().Digest().Bytes())
			return nil
		}, false); err != nil {
			return err
		}
	}

	if interest.Exclude().Size() > 0 {
		if err := e.WriteNestedTlv(tlv.Exclude, func(e *tlv.Encoder) error {
			for i := 0; i < interest.Exclude().Size(); i++ {
				entry := interest.Exclude().At(i)
				if entry.Type() == ExcludeAny {
					e.WriteTypeAndLength(tlv.Any, 0)
				} else {
					e.WriteBlobTlv(entry.Component().Type(), entry.Component().Value().Bytes())
				}
			}
			return nil
		}, false); err != nil {
			return err
		}
	}

	e.WriteOptionalNonNegativeIntegerTlv(tlv.ChildSelector, interest.ChildSelector())
	if interest.MustBeFresh() {
		e.WriteTypeAndLength(tlv.MustBeFresh, 0)
	}
	return nil
}

// decodeTlvSelectors reads the Selectors block into the Interest, accepting
// the sub-elements in any order.
func decodeTlvSelectors(interest *Interest, input Blob, decoder *tlv.Decoder) error {
	endOffset, err := decoder.ReadNestedTlvsStart(tlv.Selectors)
	if err != nil {
		return err
	}

	interest.SetMinSuffixComponents(-1)
	interest.SetMaxSuffixComponents(-1)
	interest.PublisherPublicKeyDigest().Clear()
	interest.KeyLocator().Clear()
	interest.Exclude().Clear()
	interest.SetChildSelector(-1)
	interest.SetMustBeFresh(false)

	for decoder.Offset() < endOffset {
		typeCode, err := decoder.PeekTypeCode()
		if err != nil {
			return err
		}

		switch typeCode {
		case tlv.MinSuffixComponents:
			value, err := decoder.ReadNonNegativeIntegerTlv(tlv.MinSuffixComponents)
			if err != nil {
				return err
			}
			interest.SetMinSuffixComponents(int(value))
		case tlv.MaxSuffixComponents:
			value, err := decoder.ReadNonNegativeIntegerTlv(tlv.MaxSuffixComponents)
			if err != nil {
				return err
			}
			interest.SetMaxSuffixComponents(int(value))
		case tlv.PublisherPublicKeyLocator:
			if err := decodeTlvKeyLocator(tlv.PublisherPublicKeyLocator, interest.KeyLocator(), input, decoder); err != nil {
				return err
			}
		case tlv.Exclude:
			if err := decodeTlvExclude(interest.Exclude(), input, decoder); err != nil {
				return err
			}
		case tlv.ChildSelector:
			value, err := decoder.ReadNonNegativeIntegerTlv(tlv.ChildSelector)
			if err != nil {
				return err
			}
			interest.SetChildSelector(int(value))
		case tlv.MustBeFresh:
			if _, err := decoder.ReadTypeAndLength(tlv.MustBeFresh); err != nil {
				return err
			}
			interest.SetMustBeFresh(true)
		default:
			if tlv.IsCritical(typeCode) {
				return tlv.ErrUnexpectedType
			}
			if err := decoder.SkipTlv(); err != nil {
				return err
			}
		}
	}

	return decoder.FinishNestedTlvs(endOffset)
}

func decodeTlvExclude(exclude *Exclude, input Blob, decoder *tlv.Decoder) error {
	endOffset, err := decoder.ReadNestedTlvsStart(tlv.Exclude)
	if err != nil {
		return err
	}

	exclude.Clear()
	for decoder.Offset() < endOffset {
		typeCode, err := decoder.PeekTypeCode()
		if err != nil {
			return err
		}
		if typeCode == tlv.Any {
			if _, err := decoder.ReadTypeAndLength(tlv.Any); err != nil {
				return err
			}
			exclude.AppendAny()
		} else {
			value, err := decoder.ReadBlobTlv(typeCode)
			if err != nil {
				return err
			}
			component, err := NewNameComponentFromBlob(typeCode, shareBlobRange(input, value))
			if err != nil {
				return err
			}
			exclude.AppendComponent(component)
		}
	}

	return decoder.FinishNestedTlvs(endOffset)
}

// encodeTlvKeyLocator writes a KeyLocator block with the specified outer TLV
// type, which is KeyLocator in a SignatureInfo and PublisherPublicKeyLocator
// in Selectors.
func encodeTlvKeyLocator(outerType uint32, keyLocator *KeyLocator, encoder *tlv.Encoder) error {
	return encoder.WriteNestedTlv(outerType, func(e *tlv.Encoder) error {
		switch keyLocator.Type() {
		case KeyLocatorTypeNone:
			return nil
		case KeyLocatorTypeKeyName:
			_, _, err := encodeTlvName(keyLocator.KeyName(), e)
			return err
		case KeyLocatorTypeKeyLocatorDigest:
			e.WriteBlobTlv(tlv.KeyLocatorDigest, keyLocator.KeyData().Bytes())
			return nil
		default:
			// The legacy KEY and CERTIFICATE kinds have no TLV representation.
			return ErrUnrecognizedKeyLocator
		}
	}, false)
}

func decodeTlvKeyLocator(outerType uint32, keyLocator *KeyLocator, input Blob, decoder *tlv.Decoder) error {
	endOffset, err := decoder.ReadNestedTlvsStart(outerType)
	if err != nil {
		return err
	}

	keyLocator.Clear()
	if decoder.Offset() == endOffset {
		return decoder.FinishNestedTlvs(endOffset)
	}

	typeCode, err := decoder.PeekTypeCode()
	if err != nil {
		return err
	}
	switch typeCode {
	case tlv.Name:
		keyName := NewName()
		if _, _, err := decodeTlvName(keyName, input, decoder); err != nil {
			return err
		}
		keyLocator.SetType(KeyLocatorTypeKeyName)
		keyLocator.SetKeyName(keyName)
	case tlv.KeyLocatorDigest:
		digest, err := decoder.ReadBlobTlv(tlv.KeyLocatorDigest)
		if err != nil {
			return err
		}
		keyLocator.SetType(KeyLocatorTypeKeyLocatorDigest)
		keyLocator.SetKeyData(shareBlobRange(input, digest))
	default:
		return ErrUnrecognizedKeyLocator
	}

	return decoder.FinishNestedTlvs(endOffset)
}

// encodeTlvMetaInfoValue writes the MetaInfo sub-elements. The default
// ContentType is omitted from the wire; LINK and KEY are written with their
// enum values; any other value fails with ErrUnrecognizedContentType.
func encodeTlvMetaInfoValue(metaInfo *MetaInfo, e *tlv.Encoder) error {
	if metaInfo.ContentType() != ContentTypeBlob {
		if metaInfo.ContentType() == ContentTypeLink || metaInfo.ContentType() == ContentTypeKey {
			e.WriteNonNegativeIntegerTlv(tlv.ContentType, uint64(metaInfo.ContentType()))
		} else {
			return ErrUnrecognizedContentType
		}
	}

	e.WriteOptionalNonNegativeIntegerTlvFromFloat64(tlv.FreshnessPeriod, metaInfo.FreshnessPeriod())

	if finalBlockID := metaInfo.FinalBlockID(); finalBlockID != nil {
		// The FinalBlockId wraps an inner NameComponent, keeping its type.
		if err := e.WriteNestedTlv(tlv.FinalBlockId, func(e *tlv.Encoder) error {
			e.WriteBlobTlv(finalBlockID.Type(), finalBlockID.Value().Bytes())
			return nil
		}, false); err != nil {
			return err
		}
	}
	return nil
}

func decodeTlvMetaInfo(metaInfo *MetaInfo, input Blob, decoder *tlv.Decoder, bound int) error {
	gotMetaInfo, err := decoder.PeekType(tlv.MetaInfo, bound)
	if err != nil {
		return err
	}
	if !gotMetaInfo {
		metaInfo.SetContentType(ContentTypeBlob)
		metaInfo.SetFreshnessPeriod(-1)
		metaInfo.SetFinalBlockID(nil)
		metaInfo.SetTimestampMilliseconds(-1)
		return nil
	}

	endOffset, err := decoder.ReadNestedTlvsStart(tlv.MetaInfo)
	if err != nil {
		return err
	}

	contentType, err := decoder.ReadOptionalNonNegativeIntegerTlv(tlv.ContentType, endOffset)
	if err != nil {
		return err
	}
	if contentType < 0 {
		// An omitted ContentType is the default.
		metaInfo.SetContentType(ContentTypeBlob)
	} else {
		metaInfo.SetContentType(ContentType(contentType))
	}

	freshnessPeriod, err := decoder.ReadOptionalNonNegativeIntegerTlvAsFloat64(tlv.FreshnessPeriod, endOffset)
	if err != nil {
		return err
	}
	metaInfo.SetFreshnessPeriod(freshnessPeriod)

	gotFinalBlockID, err := decoder.PeekType(tlv.FinalBlockId, endOffset)
	if err != nil {
		return err
	}
	if gotFinalBlockID {
		finalBlockIDEnd, err := decoder.ReadNestedTlvsStart(tlv.FinalBlockId)
		if err != nil {
			return err
		}
		typeCode, err := decoder.PeekTypeCode()
		if err != nil {
			return err
		}
		value, err := decoder.ReadBlobTlv(typeCode)
		if err != nil {
			return err
		}
		component, err := NewNameComponentFromBlob(typeCode, shareBlobRange(input, value))
		if err != nil {
			return err
		}
		metaInfo.SetFinalBlockID(&component)
		if err := decoder.FinishNestedTlvs(finalBlockIDEnd); err != nil {
			return err
		}
	} else {
		metaInfo.SetFinalBlockID(nil)
	}

	// The timestamp is not carried by NDN-TLV.
	metaInfo.SetTimestampMilliseconds(-1)

	return decoder.FinishNestedTlvs(endOffset)
}

// encodeTlvSignatureInfo writes the SignatureInfo block for the signature's
// tagged kind: DigestSha256 carries only its type; Sha256WithRsa and
// Sha256WithEcdsa add the key locator.
func encodeTlvSignatureInfo(signature *Signature, encoder *tlv.Encoder) error {
	return encoder.WriteNestedTlv(tlv.SignatureInfo, func(e *tlv.Encoder) error {
		switch signature.Type() {
		case SignatureTypeDigestSha256:
			e.WriteNonNegativeIntegerTlv(tlv.SignatureType, uint64(SignatureTypeDigestSha256))
			return nil
		case SignatureTypeSha256WithRsa, SignatureTypeSha256WithEcdsa:
			e.WriteNonNegativeIntegerTlv(tlv.SignatureType, uint64(signature.Type()))
			if signature.KeyLocator().Type() != KeyLocatorTypeNone {
				return encodeTlvKeyLocator(tlv.KeyLocator, signature.KeyLocator(), e)
			}
			if signature.PublisherPublicKeyDigest().Digest().Size() > 0 {
				// Fold the legacy digest into a KeyLocator.
				return e.WriteNestedTlv(tlv.KeyLocator, func(e *tlv.Encoder) error {
					e.WriteBlobTlv(tlv.KeyLocatorDigest, signature.PublisherPublicKeyDigest().Digest().Bytes())
					return nil
				}, false)
			}
			return nil
		default:
			return ErrUnsupportedSignatureType
		}
	}, false)
}

func decodeTlvSignatureInfo(signature *Signature, input Blob, decoder *tlv.Decoder) error {
	endOffset, err := decoder.ReadNestedTlvsStart(tlv.SignatureInfo)
	if err != nil {
		return err
	}

	signature.Clear()
	signatureType, err := decoder.ReadNonNegativeIntegerTlv(tlv.SignatureType)
	if err != nil {
		return err
	}

	switch SignatureType(signatureType) {
	case SignatureTypeDigestSha256:
		signature.SetType(SignatureTypeDigestSha256)
	case SignatureTypeSha256WithRsa, SignatureTypeSha256WithEcdsa:
		signature.SetType(SignatureType(signatureType))
		gotKeyLocator, err := decoder.PeekType(tlv.KeyLocator, endOffset)
		if err != nil {
			return err
		}
		if gotKeyLocator {
			if err := decodeTlvKeyLocator(tlv.KeyLocator, signature.KeyLocator(), input, decoder); err != nil {
				return err
			}
		}
	default:
		return ErrUnsupportedSignatureType
	}

	return decoder.FinishNestedTlvs(endOffset)
}
