/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// TLV types for NDN packets.
const (
	ImplicitSha256DigestComponent = 0x01
	Interest                      = 0x05
	Data                          = 0x06
	Name                          = 0x07
	GenericNameComponent          = 0x08
	Selectors                     = 0x09
	Nonce                         = 0x0A
	Scope                         = 0x0B
	InterestLifetime              = 0x0C
	MinSuffixComponents           = 0x0D
	MaxSuffixComponents           = 0x0E
	PublisherPublicKeyLocator     = 0x0F
	Exclude                       = 0x10
	ChildSelector                 = 0x11
	MustBeFresh                   = 0x12
	Any                           = 0x13
	MetaInfo                      = 0x14
	Content                       = 0x15
	SignatureInfo                 = 0x16
	SignatureValue                = 0x17
	ContentType                   = 0x18
	FreshnessPeriod               = 0x19
	FinalBlockId                  = 0x1A
	SignatureType                 = 0x1B
	KeyLocator                    = 0x1C
	KeyLocatorDigest              = 0x1D
	ForwardingHint                = 0x1E
)

// CriticalTypeCeiling is the boundary below which an unrecognized TLV type
// cannot be skipped when it trails a nested block.
const CriticalTypeCeiling = 0x7F

// IsCritical returns whether an unrecognized TLV of the specified type must be
// rejected rather than skipped.
func IsCritical(tlvType uint32) bool {
	return tlvType < CriticalTypeCeiling
}
