/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package binaryxml

import "errors"

// Binary XML codec errors.
var (
	ErrMalformed         = errors.New("bytes do not form a valid Binary XML token")
	ErrTruncated         = errors.New("Binary XML element exceeds buffer size")
	ErrUnexpectedType    = errors.New("unexpected Binary XML element")
	ErrDictionaryUnknown = errors.New("Binary XML DTAG is not in the dictionary")
)
