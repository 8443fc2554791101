/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import "errors"

// Packet codec errors.
var (
	ErrUnrecognizedContentType  = errors.New("unrecognized ContentType")
	ErrUnsupportedSignatureType = errors.New("unsupported SignatureType")
	ErrUnrecognizedKeyLocator   = errors.New("unrecognized KeyLocator type")
	ErrUnsupportedOperation     = errors.New("operation is not supported by this wire format")
)
