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
	"errors"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/slices"

	"github.com/peetonn/go-ndn/ndn/tlv"
	"github.com/peetonn/go-ndn/ndn/util"
)

// ImplicitSha256DigestSize is the required value size of an implicit SHA-256
// digest component.
const ImplicitSha256DigestSize = 32

// NameComponent holds one component of a Name: a value Blob tagged with a TLV
// type. Components are immutable values.
type NameComponent struct {
	value   Blob
	tlvType uint32
}

// NewGenericNameComponent creates a GenericNameComponent with a copy of the
// specified bytes.
func NewGenericNameComponent(value []byte) NameComponent {
	return NameComponent{value: NewBlob(value, true), tlvType: tlv.GenericNameComponent}
}

// NewNameComponentFromString creates a GenericNameComponent from the raw bytes
// of the specified string. The string is not unescaped.
func NewNameComponentFromString(value string) NameComponent {
	return NameComponent{value: NewBlobFromString(value), tlvType: tlv.GenericNameComponent}
}

// NewNameComponentFromBlob creates a component of the specified TLV type
// sharing the specified Blob.
func NewNameComponentFromBlob(tlvType uint32, value Blob) (NameComponent, error) {
	if tlvType == tlv.ImplicitSha256DigestComponent && value.Size() != ImplicitSha256DigestSize {
		return NameComponent{}, util.ErrDecodeNameComponent
	}
	return NameComponent{value: value, tlvType: tlvType}, nil
}

// NewImplicitSha256DigestComponent creates an ImplicitSha256DigestComponent
// with a copy of the specified digest, which must be exactly 32 bytes.
func NewImplicitSha256DigestComponent(digest []byte) (NameComponent, error) {
	if len(digest) != ImplicitSha256DigestSize {
		return NameComponent{}, util.ErrOutOfRange
	}
	return NameComponent{value: NewBlob(digest, true), tlvType: tlv.ImplicitSha256DigestComponent}, nil
}

// Type returns the TLV type of the component.
func (c NameComponent) Type() uint32 {
	return c.tlvType
}

// Value returns the value of the component.
func (c NameComponent) Value() Blob {
	return c.value
}

// IsGeneric returns whether the component is a GenericNameComponent.
func (c NameComponent) IsGeneric() bool {
	return c.tlvType == tlv.GenericNameComponent
}

// IsImplicitSha256Digest returns whether the component is an
// ImplicitSha256DigestComponent.
func (c NameComponent) IsImplicitSha256Digest() bool {
	return c.tlvType == tlv.ImplicitSha256DigestComponent
}

// Equals returns whether the two components have the same type and value.
func (c NameComponent) Equals(other NameComponent) bool {
	return c.tlvType == other.tlvType && c.value.Equals(other.value)
}

// Compare returns the NDN canonical order of this component against the other:
// first by type code, then by value length, then byte-by-byte.
func (c NameComponent) Compare(other NameComponent) int {
	if c.tlvType != other.tlvType {
		if c.tlvType < other.tlvType {
			return -1
		}
		return 1
	}
	if c.value.Size() != other.value.Size() {
		if c.value.Size() < other.value.Size() {
			return -1
		}
		return 1
	}
	return bytes.Compare(c.value.Bytes(), other.value.Bytes())
}

func (c NameComponent) String() string {
	switch c.tlvType {
	case tlv.GenericNameComponent:
		return escapeComponent(c.value.Bytes())
	case tlv.ImplicitSha256DigestComponent:
		return "sha256digest=" + hex.EncodeToString(c.value.Bytes())
	default:
		return strconv.FormatUint(uint64(c.tlvType), 10) + "=" + escapeComponent(c.value.Bytes())
	}
}

// escapeComponent percent-encodes a component value for its URI form. The
// unreserved characters A-Z, a-z, 0-9, '-', '_', '.', and '~' stay literal; a
// non-empty value made entirely of periods gets three periods appended.
func escapeComponent(in []byte) string {
	out := make([]byte, 0, 3*len(in))
	nPeriods := 0
	for _, b := range in {
		switch {
		case b == '.':
			nPeriods++
			fallthrough
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') ||
			b == '-' || b == '_' || b == '~':
			out = append(out, b)
		default:
			out = append(out, '%', 0, 0)
			hex.Encode(out[len(out)-2:], []byte{b})
		}
	}
	if len(in) > 0 && nPeriods == len(in) {
		out = append(out, '.', '.', '.')
	}
	return string(out)
}

// unescapeComponent reverses escapeComponent: percent-decodes, then strips the
// three extra periods from an all-period value. An empty string yields an
// empty component value.
func unescapeComponent(in string) ([]byte, error) {
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		if in[i] == '%' {
			if len(in) <= i+2 {
				return nil, errors.New("incomplete escape sequence")
			}
			unescaped, err := hex.DecodeString(in[i+1 : i+3])
			if err != nil {
				return nil, errors.New("could not decode escape sequence")
			}
			out = append(out, unescaped...)
			i += 2
		} else {
			out = append(out, in[i])
		}
	}

	allPeriods := len(out) > 0
	for _, b := range out {
		if b != '.' {
			allPeriods = false
			break
		}
	}
	if allPeriods {
		if len(out) < 3 {
			return nil, errors.New("component of fewer than 3 periods is not allowed")
		}
		out = out[:len(out)-3]
	}
	return out, nil
}

// Name represents an NDN name: an ordered sequence of name components.
type Name struct {
	components  []NameComponent
	changeCount uint64
}

// NewName constructs an empty name.
func NewName() *Name {
	return new(Name)
}

// NameFromUri decodes a name from its URI form. The "ndn:" scheme prefix and
// an authority component are accepted and ignored.
func NameFromUri(uri string) (*Name, error) {
	n := new(Name)

	uri = strings.TrimSpace(uri)
	if colon := strings.Index(uri, ":"); colon >= 0 && !strings.Contains(uri[:colon], "/") {
		uri = uri[colon+1:]
		if strings.HasPrefix(uri, "//") {
			// Strip the authority.
			slash := strings.Index(uri[2:], "/")
			if slash < 0 {
				return n, nil
			}
			uri = uri[2+slash:]
		}
	}

	if len(uri) == 0 || uri == "/" {
		return n, nil
	}
	uri = strings.TrimPrefix(uri, "/")

	for _, part := range strings.Split(uri, "/") {
		component, err := componentFromEscapedString(part)
		if err != nil {
			return nil, err
		}
		n.Append(component)
	}
	return n, nil
}

func componentFromEscapedString(part string) (NameComponent, error) {
	if equals := strings.Index(part, "="); equals >= 0 {
		prefix := part[:equals]
		rest := part[equals+1:]
		if prefix == "sha256digest" {
			digest, err := hex.DecodeString(rest)
			if err != nil {
				return NameComponent{}, errors.New("sha256digest component is not a hex string")
			}
			return NewImplicitSha256DigestComponent(digest)
		}
		if tlvType, err := strconv.ParseUint(prefix, 10, 32); err == nil {
			value, err := unescapeComponent(rest)
			if err != nil {
				return NameComponent{}, err
			}
			return NewNameComponentFromBlob(uint32(tlvType), NewBlob(value, false))
		}
	}

	value, err := unescapeComponent(part)
	if err != nil {
		return NameComponent{}, err
	}
	return NameComponent{value: NewBlob(value, false), tlvType: tlv.GenericNameComponent}, nil
}

// ToUri returns the URI form of the name with the "ndn:" scheme, each
// component escaped.
func (n *Name) ToUri() string {
	if n.Size() == 0 {
		return "ndn:/"
	}

	var out strings.Builder
	out.WriteString("ndn:")
	for _, component := range n.components {
		out.WriteByte('/')
		out.WriteString(component.String())
	}
	return out.String()
}

func (n *Name) String() string {
	return n.ToUri()
}

// Size returns the number of components in the name.
func (n *Name) Size() int {
	return len(n.components)
}

// At returns the component at the specified index. A negative index counts
// from the end of the name.
func (n *Name) At(index int) NameComponent {
	if index < 0 {
		index += len(n.components)
	}
	return n.components[index]
}

// Append adds the specified component to the end of the name.
func (n *Name) Append(component NameComponent) *Name {
	n.components = append(n.components, component)
	n.changeCount++
	return n
}

// AppendBytes adds a GenericNameComponent with a copy of the specified bytes.
func (n *Name) AppendBytes(value []byte) *Name {
	return n.Append(NewGenericNameComponent(value))
}

// AppendString adds a GenericNameComponent holding the raw bytes of the
// specified string. The string is not unescaped.
func (n *Name) AppendString(value string) *Name {
	return n.Append(NewNameComponentFromString(value))
}

// AppendName adds every component of the specified name.
func (n *Name) AppendName(other *Name) *Name {
	for _, component := range other.components {
		n.components = append(n.components, component)
	}
	n.changeCount++
	return n
}

// Clear erases all components from the name.
func (n *Name) Clear() {
	if len(n.components) > 0 {
		n.components = nil
		n.changeCount++
	}
}

// Erase removes the component at the specified index.
func (n *Name) Erase(index int) error {
	if index < 0 || index >= len(n.components) {
		return util.ErrOutOfRange
	}
	n.components = slices.Delete(n.components, index, index+1)
	n.changeCount++
	return nil
}

// Insert inserts a component at the specified index.
func (n *Name) Insert(index int, component NameComponent) error {
	if index < 0 || index > len(n.components) {
		return util.ErrOutOfRange
	}
	n.components = slices.Insert(n.components, index, component)
	n.changeCount++
	return nil
}

// Set replaces the component at the specified index.
func (n *Name) Set(index int, component NameComponent) error {
	if index < 0 || index >= len(n.components) {
		return util.ErrOutOfRange
	}
	n.components[index] = component
	n.changeCount++
	return nil
}

// Prefix returns a new name holding the first size components. If size is
// greater than or equal to the name's size, the whole name is copied.
func (n *Name) Prefix(size int) *Name {
	if size > len(n.components) {
		size = len(n.components)
	}
	prefix := new(Name)
	prefix.components = slices.Clone(n.components[:size])
	return prefix
}

// PrefixOf returns whether this name is a prefix of the specified name.
func (n *Name) PrefixOf(other *Name) bool {
	if other == nil || n.Size() > other.Size() {
		return false
	}
	for i := 0; i < n.Size(); i++ {
		if !n.components[i].Equals(other.components[i]) {
			return false
		}
	}
	return true
}

// Equals returns whether the specified name has the same components as this name.
func (n *Name) Equals(other *Name) bool {
	if other == nil || n.Size() != other.Size() {
		return false
	}
	for i := 0; i < n.Size(); i++ {
		if !n.components[i].Equals(other.components[i]) {
			return false
		}
	}
	return true
}

// Compare returns the NDN canonical order of this name against the other.
// Components are compared pairwise; if one name is a prefix of the other, the
// shorter name orders first.
func (n *Name) Compare(other *Name) int {
	for i := 0; i < n.Size() && i < other.Size(); i++ {
		if comparison := n.components[i].Compare(other.components[i]); comparison != 0 {
			return comparison
		}
	}

	switch {
	case n.Size() < other.Size():
		return -1
	case n.Size() > other.Size():
		return 1
	default:
		return 0
	}
}

// DeepCopy returns a copy of the name that shares no component storage growth
// with this name.
func (n *Name) DeepCopy() *Name {
	name := new(Name)
	name.components = slices.Clone(n.components)
	return name
}

// Hash returns a 64-bit hash of the name, suitable for use as a table key.
func (n *Name) Hash() uint64 {
	var hash uint64
	for _, component := range n.components {
		hash = hash ^ uint64(component.tlvType) ^ xxhash.Sum64(component.value.Bytes())
	}
	return hash
}

// ChangeCount returns the number of mutations made to this name.
func (n *Name) ChangeCount() uint64 {
	return n.changeCount
}
