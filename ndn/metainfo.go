/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// ContentType describes the payload of a Data packet. The values match the
// NDN-TLV ContentType assignments.
type ContentType int

// The possible values of ContentType.
const (
	ContentTypeBlob ContentType = 0
	ContentTypeLink ContentType = 1
	ContentTypeKey  ContentType = 2
	// ContentTypeData is the name the legacy Binary XML encoding used for the
	// default type.
	//
	// Deprecated: use ContentTypeBlob.
	ContentTypeData ContentType = ContentTypeBlob
)

// MetaInfo holds the metadata of a Data packet, signed along with the name and
// content.
type MetaInfo struct {
	contentType           ContentType
	freshnessPeriod       float64
	finalBlockID          *NameComponent
	timestampMilliseconds float64
	changeCount           uint64
}

// NewMetaInfo constructs a MetaInfo with type ContentTypeBlob, no freshness
// period, and no final block ID.
func NewMetaInfo() *MetaInfo {
	m := new(MetaInfo)
	m.contentType = ContentTypeBlob
	m.freshnessPeriod = -1
	m.timestampMilliseconds = -1
	return m
}

// ContentType returns the content type.
func (m *MetaInfo) ContentType() ContentType {
	return m.contentType
}

// SetContentType sets the content type.
func (m *MetaInfo) SetContentType(contentType ContentType) {
	m.contentType = contentType
	m.changeCount++
}

// FreshnessPeriod returns the freshness period in milliseconds, or -1 if not
// set.
func (m *MetaInfo) FreshnessPeriod() float64 {
	return m.freshnessPeriod
}

// SetFreshnessPeriod sets the freshness period in milliseconds. A negative
// value unsets it.
func (m *MetaInfo) SetFreshnessPeriod(milliseconds float64) {
	if milliseconds < 0 {
		milliseconds = -1
	}
	m.freshnessPeriod = milliseconds
	m.changeCount++
}

// FinalBlockID returns the final block ID component, or nil if not set.
func (m *MetaInfo) FinalBlockID() *NameComponent {
	return m.finalBlockID
}

// SetFinalBlockID sets the final block ID component. A nil component unsets it.
func (m *MetaInfo) SetFinalBlockID(finalBlockID *NameComponent) {
	m.finalBlockID = finalBlockID
	m.changeCount++
}

// TimestampMilliseconds returns the timestamp in milliseconds since the epoch,
// or -1 if not set.
//
// Deprecated: only the Binary XML encoding carries a timestamp.
func (m *MetaInfo) TimestampMilliseconds() float64 {
	return m.timestampMilliseconds
}

// SetTimestampMilliseconds sets the timestamp in milliseconds since the epoch.
// A negative value unsets it.
//
// Deprecated: only the Binary XML encoding carries a timestamp.
func (m *MetaInfo) SetTimestampMilliseconds(milliseconds float64) {
	if milliseconds < 0 {
		milliseconds = -1
	}
	m.timestampMilliseconds = milliseconds
	m.changeCount++
}

// Equals returns whether the two MetaInfos hold the same values, ignoring the
// deprecated timestamp.
func (m *MetaInfo) Equals(other *MetaInfo) bool {
	if other == nil || m.contentType != other.contentType ||
		m.freshnessPeriod != other.freshnessPeriod {
		return false
	}
	if (m.finalBlockID == nil) != (other.finalBlockID == nil) {
		return false
	}
	return m.finalBlockID == nil || m.finalBlockID.Equals(*other.finalBlockID)
}

// ChangeCount returns the number of mutations made to this MetaInfo.
func (m *MetaInfo) ChangeCount() uint64 {
	return m.changeCount
}
