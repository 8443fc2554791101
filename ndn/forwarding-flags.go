/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// ForwardingEntry flag bits as carried on the wire.
const (
	ForwardingEntryFlagActive       = 1
	ForwardingEntryFlagChildInherit = 2
	ForwardingEntryFlagAdvertise    = 4
	ForwardingEntryFlagLast         = 8
	ForwardingEntryFlagCapture      = 16
	ForwardingEntryFlagLocal        = 32
	ForwardingEntryFlagTap          = 64
	ForwardingEntryFlagCaptureOk    = 128
)

// ForwardingFlags holds the flag bits of a ForwardingEntry.
type ForwardingFlags struct {
	active       bool
	childInherit bool
	advertise    bool
	last         bool
	capture      bool
	local        bool
	tap          bool
	captureOk    bool
}

// NewForwardingFlags constructs ForwardingFlags with the defaults: active and
// child inherit set.
func NewForwardingFlags() ForwardingFlags {
	return ForwardingFlags{active: true, childInherit: true}
}

// ForwardingEntryFlags packs the flags into the wire bit field.
func (f ForwardingFlags) ForwardingEntryFlags() int {
	flags := 0
	if f.active {
		flags |= ForwardingEntryFlagActive
	}
	if f.childInherit {
		flags |= ForwardingEntryFlagChildInherit
	}
	if f.advertise {
		flags |= ForwardingEntryFlagAdvertise
	}
	if f.last {
		flags |= ForwardingEntryFlagLast
	}
	if f.capture {
		flags |= ForwardingEntryFlagCapture
	}
	if f.local {
		flags |= ForwardingEntryFlagLocal
	}
	if f.tap {
		flags |= ForwardingEntryFlagTap
	}
	if f.captureOk {
		flags |= ForwardingEntryFlagCaptureOk
	}
	return flags
}

// SetForwardingEntryFlags unpacks the wire bit field into the flags.
func (f *ForwardingFlags) SetForwardingEntryFlags(flags int) {
	f.active = flags&ForwardingEntryFlagActive != 0
	f.childInherit = flags&ForwardingEntryFlagChildInherit != 0
	f.advertise = flags&ForwardingEntryFlagAdvertise != 0
	f.last = flags&ForwardingEntryFlagLast != 0
	f.capture = flags&ForwardingEntryFlagCapture != 0
	f.local = flags&ForwardingEntryFlagLocal != 0
	f.tap = flags&ForwardingEntryFlagTap != 0
	f.captureOk = flags&ForwardingEntryFlagCaptureOk != 0
}

// Active returns whether the entry is active.
func (f ForwardingFlags) Active() bool { return f.active }

// SetActive sets whether the entry is active.
func (f *ForwardingFlags) SetActive(active bool) { f.active = active }

// ChildInherit returns whether the entry applies to child prefixes.
func (f ForwardingFlags) ChildInherit() bool { return f.childInherit }

// SetChildInherit sets whether the entry applies to child prefixes.
func (f *ForwardingFlags) SetChildInherit(childInherit bool) { f.childInherit = childInherit }

// Advertise returns whether the prefix may be advertised.
func (f ForwardingFlags) Advertise() bool { return f.advertise }

// SetAdvertise sets whether the prefix may be advertised.
func (f *ForwardingFlags) SetAdvertise(advertise bool) { f.advertise = advertise }

// Last returns whether the entry is used as a last resort.
func (f ForwardingFlags) Last() bool { return f.last }

// SetLast sets whether the entry is used as a last resort.
func (f *ForwardingFlags) SetLast(last bool) { f.last = last }

// Capture returns whether the entry overrides shorter child-inherit prefixes.
func (f ForwardingFlags) Capture() bool { return f.capture }

// SetCapture sets whether the entry overrides shorter child-inherit prefixes.
func (f *ForwardingFlags) SetCapture(capture bool) { f.capture = capture }

// Local returns whether the entry applies only to the local application.
func (f ForwardingFlags) Local() bool { return f.local }

// SetLocal sets whether the entry applies only to the local application.
func (f *ForwardingFlags) SetLocal(local bool) { f.local = local }

// Tap returns whether matching Interests are also delivered to the entry.
func (f ForwardingFlags) Tap() bool { return f.tap }

// SetTap sets whether matching Interests are also delivered to the entry.
func (f *ForwardingFlags) SetTap(tap bool) { f.tap = tap }

// CaptureOk returns whether capture by other entries is tolerated.
func (f ForwardingFlags) CaptureOk() bool { return f.captureOk }

// SetCaptureOk sets whether capture by other entries is tolerated.
func (f *ForwardingFlags) SetCaptureOk(captureOk bool) { f.captureOk = captureOk }
