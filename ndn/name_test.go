/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peetonn/go-ndn/ndn"
)

func TestNameUriWithEmptyComponent(t *testing.T) {
	n := ndn.NewName().AppendString("ndn").AppendString("").AppendString("a.b")
	assert.Equal(t, "ndn:/ndn//a.b", n.ToUri())

	reparsed, err := ndn.NameFromUri(n.ToUri())
	assert.NoError(t, err)
	assert.Equal(t, 3, reparsed.Size())
	assert.Equal(t, 0, reparsed.At(1).Value().Size())
	assert.True(t, n.Equals(reparsed))
}

func TestNameUriEscaping(t *testing.T) {
	n := ndn.NewName().AppendBytes([]byte{' ', '%', '+'})
	assert.Equal(t, "ndn:/%20%25%2b", n.ToUri())

	reparsed, err := ndn.NameFromUri(n.ToUri())
	assert.NoError(t, err)
	assert.True(t, n.Equals(reparsed))
}

func TestNameUriPeriods(t *testing.T) {
	// A value of all periods gets three periods appended.
	n := ndn.NewName().AppendString(".")
	assert.Equal(t, "ndn:/....", n.ToUri())

	reparsed, err := ndn.NameFromUri("ndn:/....")
	assert.NoError(t, err)
	assert.Equal(t, 1, reparsed.Size())
	assert.Equal(t, []byte{'.'}, reparsed.At(0).Value().Bytes())

	// Three periods decode to the empty component.
	reparsed, err = ndn.NameFromUri("/...")
	assert.NoError(t, err)
	assert.Equal(t, 1, reparsed.Size())
	assert.Equal(t, 0, reparsed.At(0).Value().Size())
}

func TestNameUriRoundTrip(t *testing.T) {
	n := ndn.NewName().AppendString("a").AppendBytes([]byte{0x00, 0x01}).AppendString("b~-_.")
	reparsed, err := ndn.NameFromUri(n.ToUri())
	assert.NoError(t, err)
	assert.True(t, n.Equals(reparsed))
}

func TestNameFromUriForms(t *testing.T) {
	for _, uri := range []string{"/a/b", "ndn:/a/b", "ndn://authority/a/b"} {
		n, err := ndn.NameFromUri(uri)
		assert.NoError(t, err, uri)
		assert.Equal(t, 2, n.Size(), uri)
		assert.Equal(t, "a", string(n.At(0).Value().Bytes()), uri)
	}

	empty, err := ndn.NameFromUri("ndn:/")
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, "ndn:/", empty.ToUri())
}

func TestNameImplicitDigestUri(t *testing.T) {
	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}
	component, err := ndn.NewImplicitSha256DigestComponent(digest)
	assert.NoError(t, err)
	n := ndn.NewName().Append(component)

	reparsed, err := ndn.NameFromUri(n.ToUri())
	assert.NoError(t, err)
	assert.True(t, n.Equals(reparsed))
	assert.True(t, reparsed.At(0).IsImplicitSha256Digest())

	_, err = ndn.NewImplicitSha256DigestComponent([]byte{0x01})
	assert.Error(t, err)
}

func TestNameTypedComponentUri(t *testing.T) {
	component, err := ndn.NewNameComponentFromBlob(0x21, ndn.NewBlob([]byte("v1"), true))
	assert.NoError(t, err)
	n := ndn.NewName().Append(component)
	assert.Equal(t, "ndn:/33=v1", n.ToUri())

	reparsed, err := ndn.NameFromUri(n.ToUri())
	assert.NoError(t, err)
	assert.True(t, n.Equals(reparsed))
}

func TestNamePrefixAndEquality(t *testing.T) {
	n, err := ndn.NameFromUri("/a/b/c")
	assert.NoError(t, err)

	prefix := n.Prefix(2)
	assert.Equal(t, 2, prefix.Size())
	assert.True(t, prefix.PrefixOf(n))
	assert.False(t, n.PrefixOf(prefix))
	assert.True(t, n.PrefixOf(n))

	other, err := ndn.NameFromUri("/a/b/c")
	assert.NoError(t, err)
	assert.True(t, n.Equals(other))
	other.AppendString("d")
	assert.False(t, n.Equals(other))
}

func TestNameCanonicalOrder(t *testing.T) {
	a, _ := ndn.NameFromUri("/a")
	ab, _ := ndn.NameFromUri("/a/b")
	b, _ := ndn.NameFromUri("/b")
	aa, _ := ndn.NameFromUri("/aa")

	// A prefix orders before its extensions.
	assert.Equal(t, -1, a.Compare(ab))
	assert.Equal(t, 1, ab.Compare(a))
	// Shorter components order before longer ones.
	assert.Equal(t, -1, b.Compare(aa))
	assert.Equal(t, 1, aa.Compare(b))
	// Equal-length components order bytewise.
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a.DeepCopy()))
}

func TestNameMutators(t *testing.T) {
	n := ndn.NewName().AppendString("a").AppendString("c")
	assert.NoError(t, n.Insert(1, ndn.NewGenericNameComponent([]byte("b"))))
	assert.Equal(t, "ndn:/a/b/c", n.ToUri())

	assert.NoError(t, n.Set(0, ndn.NewGenericNameComponent([]byte("x"))))
	assert.Equal(t, "ndn:/x/b/c", n.ToUri())

	assert.NoError(t, n.Erase(1))
	assert.Equal(t, "ndn:/x/c", n.ToUri())
	assert.Error(t, n.Erase(5))

	assert.Equal(t, "c", string(n.At(-1).Value().Bytes()))

	n.Clear()
	assert.Equal(t, 0, n.Size())
}

func TestNameChangeCount(t *testing.T) {
	n := ndn.NewName()
	before := n.ChangeCount()
	n.AppendString("a")
	assert.Greater(t, n.ChangeCount(), before)

	// A non-mutating observation leaves the count alone.
	middle := n.ChangeCount()
	_ = n.ToUri()
	_ = n.Size()
	assert.Equal(t, middle, n.ChangeCount())
}

func TestNameHash(t *testing.T) {
	a, _ := ndn.NameFromUri("/a/b")
	sameA, _ := ndn.NameFromUri("/a/b")
	b, _ := ndn.NameFromUri("/a/c")

	assert.Equal(t, a.Hash(), sameA.Hash())
	assert.NotEqual(t, a.Hash(), b.Hash())
}
