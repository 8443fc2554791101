/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// Data represents an NDN Data packet.
type Data struct {
	signature   ChangeCounter[*Signature]
	name        ChangeCounter[*Name]
	metaInfo    ChangeCounter[*MetaInfo]
	content     Blob
	changeCount uint64

	defaultWireEncoding            SignedBlob
	defaultWireEncodingFormat      WireFormat
	defaultWireEncodingChangeCount uint64
}

// NewData constructs a Data packet with an empty name, default MetaInfo, and
// no signature.
func NewData() *Data {
	d := new(Data)
	d.signature = NewChangeCounter(NewSignature())
	d.name = NewChangeCounter(NewName())
	d.metaInfo = NewChangeCounter(NewMetaInfo())
	return d
}

// NewDataWithName constructs a Data packet for the specified name.
func NewDataWithName(name *Name) *Data {
	d := NewData()
	d.SetName(name)
	return d
}

// Signature returns the signature of the Data packet. The returned object is
// live: mutations to it are seen by this Data's change count.
func (d *Data) Signature() *Signature {
	return d.signature.Get()
}

// SetSignature sets the signature of the Data packet. A nil signature clears it.
func (d *Data) SetSignature(signature *Signature) {
	if signature == nil {
		signature = NewSignature()
	}
	d.signature.Set(signature)
	d.changeCount++
}

// Name returns the name of the Data packet. The returned name is live.
func (d *Data) Name() *Name {
	return d.name.Get()
}

// SetName sets the name of the Data packet. A nil name clears it.
func (d *Data) SetName(name *Name) {
	if name == nil {
		name = NewName()
	}
	d.name.Set(name)
	d.changeCount++
}

// MetaInfo returns the MetaInfo of the Data packet. The returned object is live.
func (d *Data) MetaInfo() *MetaInfo {
	return d.metaInfo.Get()
}

// SetMetaInfo sets the MetaInfo of the Data packet. A nil MetaInfo resets it
// to defaults.
func (d *Data) SetMetaInfo(metaInfo *MetaInfo) {
	if metaInfo == nil {
		metaInfo = NewMetaInfo()
	}
	d.metaInfo.Set(metaInfo)
	d.changeCount++
}

// Content returns the content of the Data packet.
func (d *Data) Content() Blob {
	return d.content
}

// SetContent sets the content of the Data packet.
func (d *Data) SetContent(content Blob) {
	d.content = content
	d.changeCount++
}

// Equals returns whether the two Data packets hold the same name, MetaInfo,
// content, and signature.
func (d *Data) Equals(other *Data) bool {
	if other == nil {
		return false
	}
	return d.name.Get().Equals(other.name.Get()) &&
		d.metaInfo.Get().Equals(other.metaInfo.Get()) &&
		d.content.Equals(other.content) &&
		d.signature.Get().Equals(other.signature.Get())
}

// WireEncode encodes the Data with the specified wire format, or the default
// wire format if none is given. The returned SignedBlob brackets the signed
// portion: the bytes from the name through the signature info, which a
// verifier must hash. Encoding with the default wire format is cached until
// the Data changes.
func (d *Data) WireEncode(wireFormat ...WireFormat) (SignedBlob, error) {
	wf := pickWireFormat(wireFormat)
	if !d.defaultWireEncoding.IsNull() && d.defaultWireEncodingFormat == wf &&
		d.defaultWireEncodingChangeCount == d.ChangeCount() {
		return d.defaultWireEncoding, nil
	}

	encoding, err := wf.EncodeData(d)
	if err != nil {
		return SignedBlob{}, err
	}
	if wf == DefaultWireFormat() {
		d.setDefaultWireEncoding(encoding, wf)
	}
	return encoding, nil
}

// WireDecode decodes the Data from a copy of the specified bytes with the
// specified wire format, or the default wire format if none is given.
func (d *Data) WireDecode(input []byte, wireFormat ...WireFormat) error {
	return d.WireDecodeShared(NewBlob(input, true), wireFormat...)
}

// WireDecodeShared is like WireDecode but shares the Blob's buffer instead of
// copying: decoded fields reference the buffer directly, which is safe because
// Blob buffers are immutable.
func (d *Data) WireDecodeShared(input Blob, wireFormat ...WireFormat) error {
	wf := pickWireFormat(wireFormat)
	signedBegin, signedEnd, err := wf.DecodeData(d, input)
	if err != nil {
		return err
	}

	if wf == DefaultWireFormat() {
		d.setDefaultWireEncoding(NewSignedBlobFromBlob(input, signedBegin, signedEnd), wf)
	} else {
		d.defaultWireEncoding = SignedBlob{}
		d.defaultWireEncodingFormat = nil
	}
	return nil
}

// DefaultWireEncoding returns the cached encoding from the latest WireEncode
// or WireDecode with the default wire format, or a null SignedBlob if the Data
// has changed since.
func (d *Data) DefaultWireEncoding() SignedBlob {
	if d.defaultWireEncodingChangeCount != d.ChangeCount() {
		return SignedBlob{}
	}
	return d.defaultWireEncoding
}

func (d *Data) setDefaultWireEncoding(encoding SignedBlob, wireFormat WireFormat) {
	d.defaultWireEncoding = encoding
	d.defaultWireEncodingFormat = wireFormat
	d.defaultWireEncodingChangeCount = d.ChangeCount()
}

// ChangeCount returns the number of mutations made to this Data or its
// children.
func (d *Data) ChangeCount() uint64 {
	changed := d.signature.CheckChanged()
	changed = d.name.CheckChanged() || changed
	changed = d.metaInfo.CheckChanged() || changed
	if changed {
		d.changeCount++
	}
	return d.changeCount
}
