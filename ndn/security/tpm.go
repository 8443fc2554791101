/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"encoding/hex"
	"math/rand"

	"github.com/cornelk/hashmap"

	"github.com/peetonn/go-ndn/ndn"
	"github.com/peetonn/go-ndn/ndn/util"
)

// KeyType selects the kind of key a TPM back-end creates.
type KeyType int

// The possible values of KeyType.
const (
	KeyTypeRsa KeyType = iota
	KeyTypeEc
)

// KeyParams describes the key a TPM back-end should create.
type KeyParams struct {
	Type KeyType
	// Size is the modulus size in bits for RSA keys; EC keys ignore it.
	Size int
}

// TpmKeyHandle is an opaque reference to a key held by a TPM back-end.
type TpmKeyHandle interface {
	// KeyName returns the name of the key the handle refers to.
	KeyName() *ndn.Name
}

// TpmBackEnd is a store of named keys. The packet model never signs with a
// key itself; it only brackets the byte range a signer must cover, so the
// back-end traffics in handles.
type TpmBackEnd interface {
	// HasKey returns whether the back-end holds a key with the specified name.
	HasKey(keyName *ndn.Name) bool
	// GetKeyHandle returns a handle to the key with the specified name, or
	// util.ErrNonExistent if the back-end does not hold it.
	GetKeyHandle(keyName *ndn.Name) (TpmKeyHandle, error)
	// CreateKey creates a key for the identity according to params and returns
	// its handle.
	CreateKey(identityName *ndn.Name, params KeyParams) (TpmKeyHandle, error)
	// DeleteKey removes the key with the specified name, if present.
	DeleteKey(keyName *ndn.Name) error
}

type memoryKeyHandle struct {
	keyName *ndn.Name
	params  KeyParams
}

func (h *memoryKeyHandle) KeyName() *ndn.Name {
	return h.keyName
}

// TpmBackEndMemory is an in-memory TpmBackEnd, mapping key names to handles.
// It is safe for concurrent use.
type TpmBackEndMemory struct {
	keys hashmap.HashMap
}

// NewTpmBackEndMemory creates an empty in-memory TPM back-end.
func NewTpmBackEndMemory() *TpmBackEndMemory {
	return new(TpmBackEndMemory)
}

func tpmKeyName(keyName *ndn.Name) string {
	return keyName.ToUri()
}

// HasKey returns whether the back-end holds a key with the specified name.
func (t *TpmBackEndMemory) HasKey(keyName *ndn.Name) bool {
	_, ok := t.keys.GetStringKey(tpmKeyName(keyName))
	return ok
}

// GetKeyHandle returns a handle to the key with the specified name.
func (t *TpmBackEndMemory) GetKeyHandle(keyName *ndn.Name) (TpmKeyHandle, error) {
	handle, ok := t.keys.GetStringKey(tpmKeyName(keyName))
	if !ok {
		return nil, util.ErrNonExistent
	}
	return handle.(TpmKeyHandle), nil
}

// CreateKey creates a key for the identity according to params. The key name
// is the identity name plus "KEY" and a random key ID component.
func (t *TpmBackEndMemory) CreateKey(identityName *ndn.Name, params KeyParams) (TpmKeyHandle, error) {
	keyID := make([]byte, 8)
	rand.Read(keyID)

	keyName := identityName.DeepCopy()
	keyName.AppendString("KEY")
	keyName.AppendString(hex.EncodeToString(keyID))

	handle := &memoryKeyHandle{keyName: keyName, params: params}
	t.keys.Set(tpmKeyName(keyName), TpmKeyHandle(handle))
	return handle, nil
}

// DeleteKey removes the key with the specified name, if present.
func (t *TpmBackEndMemory) DeleteKey(keyName *ndn.Name) error {
	t.keys.Del(tpmKeyName(keyName))
	return nil
}
