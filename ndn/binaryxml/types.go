/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package binaryxml

// Binary XML node types, carried in the low 3 bits of the final header byte.
const (
	TTExt   = 0
	TTTag   = 1
	TTDTag  = 2
	TTAttr  = 3
	TTDAttr = 4
	TTBlob  = 5
	TTUData = 6
)

// ElementClose terminates a Binary XML element.
const ElementClose = 0x00

// headerHighBit marks the final byte of a Binary XML type-and-value header.
const headerHighBit = 0x80

// headerValueBits is the number of value bits carried by the final header byte.
const headerValueBits = 4

// Dictionary tags.
const (
	DTagAny                              = 13
	DTagName                             = 14
	DTagComponent                        = 15
	DTagCertificate                      = 16
	DTagCollection                       = 17
	DTagCompleteName                     = 18
	DTagContent                          = 19
	DTagSignedInfo                       = 20
	DTagContentDigest                    = 21
	DTagContentHash                      = 22
	DTagCount                            = 24
	DTagHeader                           = 25
	DTagInterest                         = 26
	DTagKey                              = 27
	DTagKeyLocator                       = 28
	DTagKeyName                          = 29
	DTagLength                           = 30
	DTagLink                             = 31
	DTagLinkAuthenticator                = 32
	DTagNameComponentCount               = 33
	DTagRootDigest                       = 36
	DTagSignature                        = 37
	DTagStart                            = 38
	DTagTimestamp                        = 39
	DTagType                             = 40
	DTagNonce                            = 41
	DTagScope                            = 42
	DTagExclude                          = 43
	DTagBloom                            = 44
	DTagBloomSeed                        = 45
	DTagAnswerOriginKind                 = 47
	DTagInterestLifetime                 = 48
	DTagWitness                          = 53
	DTagSignatureBits                    = 54
	DTagDigestAlgorithm                  = 55
	DTagBlockSize                        = 56
	DTagFreshnessSeconds                 = 58
	DTagFinalBlockID                     = 59
	DTagPublisherPublicKeyDigest         = 60
	DTagPublisherCertificateDigest       = 61
	DTagPublisherIssuerKeyDigest         = 62
	DTagPublisherIssuerCertificateDigest = 63
	DTagContentObject                    = 64
	DTagAction                           = 73
	DTagFaceID                           = 74
	DTagIPProto                          = 75
	DTagHost                             = 76
	DTagPort                             = 77
	DTagMulticastInterface               = 78
	DTagForwardingFlags                  = 79
	DTagFaceInstance                     = 80
	DTagForwardingEntry                  = 81
	DTagMulticastTTL                     = 82
	DTagMinSuffixComponents              = 83
	DTagMaxSuffixComponents              = 84
	DTagChildSelector                    = 85
	DTagStatusResponse                   = 112
	DTagStatusCode                       = 113
	DTagStatusText                       = 114
	DTagSequenceNumber                   = 256
)

// dtagNames maps known dictionary tags to their display names.
var dtagNames = map[uint64]string{
	DTagAny:                              "Any",
	DTagName:                             "Name",
	DTagComponent:                        "Component",
	DTagCertificate:                      "Certificate",
	DTagCollection:                       "Collection",
	DTagCompleteName:                     "CompleteName",
	DTagContent:                          "Content",
	DTagSignedInfo:                       "SignedInfo",
	DTagContentDigest:                    "ContentDigest",
	DTagContentHash:                      "ContentHash",
	DTagCount:                            "Count",
	DTagHeader:                           "Header",
	DTagInterest:                         "Interest",
	DTagKey:                              "Key",
	DTagKeyLocator:                       "KeyLocator",
	DTagKeyName:                          "KeyName",
	DTagLength:                           "Length",
	DTagLink:                             "Link",
	DTagLinkAuthenticator:                "LinkAuthenticator",
	DTagNameComponentCount:               "NameComponentCount",
	DTagRootDigest:                       "RootDigest",
	DTagSignature:                        "Signature",
	DTagStart:                            "Start",
	DTagTimestamp:                        "Timestamp",
	DTagType:                             "Type",
	DTagNonce:                            "Nonce",
	DTagScope:                            "Scope",
	DTagExclude:                          "Exclude",
	DTagBloom:                            "Bloom",
	DTagBloomSeed:                        "BloomSeed",
	DTagAnswerOriginKind:                 "AnswerOriginKind",
	DTagInterestLifetime:                 "InterestLifetime",
	DTagWitness:                          "Witness",
	DTagSignatureBits:                    "SignatureBits",
	DTagDigestAlgorithm:                  "DigestAlgorithm",
	DTagBlockSize:                        "BlockSize",
	DTagFreshnessSeconds:                 "FreshnessSeconds",
	DTagFinalBlockID:                     "FinalBlockID",
	DTagPublisherPublicKeyDigest:         "PublisherPublicKeyDigest",
	DTagPublisherCertificateDigest:       "PublisherCertificateDigest",
	DTagPublisherIssuerKeyDigest:         "PublisherIssuerKeyDigest",
	DTagPublisherIssuerCertificateDigest: "PublisherIssuerCertificateDigest",
	DTagContentObject:                    "ContentObject",
	DTagAction:                           "Action",
	DTagFaceID:                           "FaceID",
	DTagIPProto:                          "IPProto",
	DTagHost:                             "Host",
	DTagPort:                             "Port",
	DTagMulticastInterface:               "MulticastInterface",
	DTagForwardingFlags:                  "ForwardingFlags",
	DTagFaceInstance:                     "FaceInstance",
	DTagForwardingEntry:                  "ForwardingEntry",
	DTagMulticastTTL:                     "MulticastTTL",
	DTagMinSuffixComponents:              "MinSuffixComponents",
	DTagMaxSuffixComponents:              "MaxSuffixComponents",
	DTagChildSelector:                    "ChildSelector",
	DTagStatusResponse:                   "StatusResponse",
	DTagStatusCode:                       "StatusCode",
	DTagStatusText:                       "StatusText",
	DTagSequenceNumber:                   "SequenceNumber",
}

// IsKnownDTag returns whether the specified tag is in the dictionary.
func IsKnownDTag(tag uint64) bool {
	_, ok := dtagNames[tag]
	return ok
}

// DTagString returns the display name of the specified dictionary tag, or the
// empty string if the tag is unknown.
func DTagString(tag uint64) string {
	return dtagNames[tag]
}

// Legacy 3-byte content type values carried in a SignedInfo Type element.
var (
	ContentTypeDataBytes = []byte{0x0C, 0x04, 0xC0}
	ContentTypeEncrBytes = []byte{0x10, 0xD0, 0x91}
	ContentTypeGoneBytes = []byte{0x18, 0xE3, 0x44}
	ContentTypeKeyBytes  = []byte{0x28, 0x46, 0x3F}
	ContentTypeLinkBytes = []byte{0x2C, 0x83, 0x4A}
	ContentTypeNackBytes = []byte{0x34, 0x00, 0x8A}
)
