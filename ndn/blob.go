/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"encoding/hex"
)

// Blob holds an immutable byte buffer shared among every holder of the Blob.
// A Blob may also be null, which is distinct from holding an empty buffer.
// Because the buffer is never written after construction, Blobs are safe to
// share across goroutines.
type Blob struct {
	data []byte
}

// NewBlob creates a Blob over the specified bytes. If copyValue, the Blob owns
// a private copy; otherwise it shares the caller's buffer, and the caller
// promises not to modify it afterward. A nil value creates a null Blob.
func NewBlob(value []byte, copyValue bool) Blob {
	if value == nil {
		return Blob{}
	}
	if !copyValue {
		return Blob{data: value}
	}
	data := make([]byte, len(value))
	copy(data, value)
	return Blob{data: data}
}

// NewBlobFromString creates a Blob holding the bytes of the specified string.
func NewBlobFromString(value string) Blob {
	return Blob{data: []byte(value)}
}

// IsNull returns whether the Blob is null, as opposed to empty.
func (b Blob) IsNull() bool {
	return b.data == nil
}

// Size returns the number of bytes held, or 0 for a null Blob.
func (b Blob) Size() int {
	return len(b.data)
}

// Bytes returns the held buffer. Callers must not modify it. Returns nil for a
// null Blob.
func (b Blob) Bytes() []byte {
	return b.data
}

// Equals returns whether the two Blobs hold the same bytes. Two null Blobs are
// equal; a null Blob never equals a non-null one.
func (b Blob) Equals(other Blob) bool {
	if b.IsNull() || other.IsNull() {
		return b.IsNull() && other.IsNull()
	}
	return bytes.Equal(b.data, other.data)
}

func (b Blob) String() string {
	return hex.EncodeToString(b.data)
}

// SignedBlob is a Blob of an encoded packet together with the offsets of the
// signed portion, the byte range a signature covers.
type SignedBlob struct {
	Blob
	signedBegin int
	signedEnd   int
}

// NewSignedBlob creates a SignedBlob over the specified bytes and signed
// portion offsets. If copyValue, the SignedBlob owns a private copy.
func NewSignedBlob(value []byte, copyValue bool, signedBegin int, signedEnd int) SignedBlob {
	return SignedBlob{
		Blob:        NewBlob(value, copyValue),
		signedBegin: signedBegin,
		signedEnd:   signedEnd,
	}
}

// NewSignedBlobFromBlob creates a SignedBlob sharing the specified Blob's buffer.
func NewSignedBlobFromBlob(blob Blob, signedBegin int, signedEnd int) SignedBlob {
	return SignedBlob{Blob: blob, signedBegin: signedBegin, signedEnd: signedEnd}
}

// SignedBegin returns the offset of the first byte of the signed portion.
func (b SignedBlob) SignedBegin() int {
	return b.signedBegin
}

// SignedEnd returns the offset past the last byte of the signed portion.
func (b SignedBlob) SignedEnd() int {
	return b.signedEnd
}

// SignedBytes returns the bytes of the signed portion. Callers must not
// modify the returned slice.
func (b SignedBlob) SignedBytes() []byte {
	if b.IsNull() {
		return nil
	}
	return b.data[b.signedBegin:b.signedEnd]
}
