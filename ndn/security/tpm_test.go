/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peetonn/go-ndn/ndn"
	"github.com/peetonn/go-ndn/ndn/security"
	"github.com/peetonn/go-ndn/ndn/util"
)

func TestTpmBackEndMemoryCreateAndGet(t *testing.T) {
	tpm := security.NewTpmBackEndMemory()
	identity, err := ndn.NameFromUri("/org/example/alice")
	assert.NoError(t, err)

	handle, err := tpm.CreateKey(identity, security.KeyParams{Type: security.KeyTypeRsa, Size: 2048})
	assert.NoError(t, err)
	assert.NotNil(t, handle)

	keyName := handle.KeyName()
	assert.True(t, identity.PrefixOf(keyName))
	assert.Equal(t, identity.Size()+2, keyName.Size())
	assert.Equal(t, "KEY", string(keyName.At(identity.Size()).Value().Bytes()))

	assert.True(t, tpm.HasKey(keyName))
	fetched, err := tpm.GetKeyHandle(keyName)
	assert.NoError(t, err)
	assert.True(t, keyName.Equals(fetched.KeyName()))
}

func TestTpmBackEndMemoryMissingKey(t *testing.T) {
	tpm := security.NewTpmBackEndMemory()
	keyName, _ := ndn.NameFromUri("/no/such/KEY/0")

	assert.False(t, tpm.HasKey(keyName))
	_, err := tpm.GetKeyHandle(keyName)
	assert.ErrorIs(t, err, util.ErrNonExistent)
}

func TestTpmBackEndMemoryDeleteKey(t *testing.T) {
	tpm := security.NewTpmBackEndMemory()
	identity, _ := ndn.NameFromUri("/org/example/bob")
	handle, err := tpm.CreateKey(identity, security.KeyParams{Type: security.KeyTypeEc})
	assert.NoError(t, err)

	assert.True(t, tpm.HasKey(handle.KeyName()))
	assert.NoError(t, tpm.DeleteKey(handle.KeyName()))
	assert.False(t, tpm.HasKey(handle.KeyName()))

	// Deleting an absent key is not an error.
	assert.NoError(t, tpm.DeleteKey(handle.KeyName()))
}

func TestTpmBackEndMemoryConcurrent(t *testing.T) {
	tpm := security.NewTpmBackEndMemory()
	identity, _ := ndn.NameFromUri("/org/example/crowd")

	var group sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for iteration := 0; iteration < 50; iteration++ {
				handle, err := tpm.CreateKey(identity, security.KeyParams{Type: security.KeyTypeEc})
				if err != nil {
					continue
				}
				tpm.HasKey(handle.KeyName())
				tpm.DeleteKey(handle.KeyName())
			}
		}()
	}
	group.Wait()
}
