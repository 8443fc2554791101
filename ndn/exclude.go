/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"strings"
)

// ExcludeType distinguishes the two kinds of Exclude entries.
type ExcludeType int

// The possible kinds of Exclude entries.
const (
	ExcludeAny ExcludeType = iota
	ExcludeComponent
)

// ExcludeEntry is one entry in an Exclude: either the ANY wildcard or a
// concrete name component.
type ExcludeEntry struct {
	entryType ExcludeType
	component NameComponent
}

// NewExcludeAnyEntry creates an ANY entry.
func NewExcludeAnyEntry() ExcludeEntry {
	return ExcludeEntry{entryType: ExcludeAny}
}

// NewExcludeComponentEntry creates an entry holding the specified component.
func NewExcludeComponentEntry(component NameComponent) ExcludeEntry {
	return ExcludeEntry{entryType: ExcludeComponent, component: component}
}

// Type returns the kind of the entry.
func (e ExcludeEntry) Type() ExcludeType {
	return e.entryType
}

// Component returns the component of a component entry.
func (e ExcludeEntry) Component() NameComponent {
	return e.component
}

// Exclude represents the Exclude selector of an Interest: an ordered list of
// components and ANY wildcards. The list is kept canonical, so no two ANY
// entries are ever adjacent.
type Exclude struct {
	entries     []ExcludeEntry
	changeCount uint64
}

// NewExclude constructs an empty Exclude.
func NewExclude() *Exclude {
	return new(Exclude)
}

// Size returns the number of entries.
func (e *Exclude) Size() int {
	return len(e.entries)
}

// At returns the entry at the specified index.
func (e *Exclude) At(index int) ExcludeEntry {
	return e.entries[index]
}

// AppendAny appends an ANY wildcard. If the last entry is already ANY, the
// list is unchanged so that it stays canonical.
func (e *Exclude) AppendAny() *Exclude {
	if len(e.entries) > 0 && e.entries[len(e.entries)-1].entryType == ExcludeAny {
		return e
	}
	e.entries = append(e.entries, NewExcludeAnyEntry())
	e.changeCount++
	return e
}

// AppendComponent appends an entry holding the specified component.
func (e *Exclude) AppendComponent(component NameComponent) *Exclude {
	e.entries = append(e.entries, NewExcludeComponentEntry(component))
	e.changeCount++
	return e
}

// Clear erases all entries.
func (e *Exclude) Clear() {
	if len(e.entries) > 0 {
		e.entries = nil
		e.changeCount++
	}
}

// Matches returns whether the specified component is excluded, either by an
// exact component entry or by the open or bounded range around an ANY entry.
func (e *Exclude) Matches(component NameComponent) bool {
	for i := range e.entries {
		if e.entries[i].entryType == ExcludeAny {
			lowerBoundOk := i == 0 || e.entries[i-1].component.Compare(component) < 0
			upperBoundOk := i+1 >= len(e.entries) || e.entries[i+1].component.Compare(component) > 0
			if lowerBoundOk && upperBoundOk {
				return true
			}
		} else if e.entries[i].component.Equals(component) {
			return true
		}
	}
	return false
}

// ToUri returns the URI form of the Exclude: entries separated by commas, with
// "*" for ANY.
func (e *Exclude) ToUri() string {
	var out strings.Builder
	for i, entry := range e.entries {
		if i > 0 {
			out.WriteByte(',')
		}
		if entry.entryType == ExcludeAny {
			out.WriteByte('*')
		} else {
			out.WriteString(entry.component.String())
		}
	}
	return out.String()
}

func (e *Exclude) String() string {
	return e.ToUri()
}

// Equals returns whether the two Excludes hold the same entries.
func (e *Exclude) Equals(other *Exclude) bool {
	if other == nil || len(e.entries) != len(other.entries) {
		return false
	}
	for i := range e.entries {
		if e.entries[i].entryType != other.entries[i].entryType {
			return false
		}
		if e.entries[i].entryType == ExcludeComponent &&
			!e.entries[i].component.Equals(other.entries[i].component) {
			return false
		}
	}
	return true
}

// ChangeCount returns the number of mutations made to this Exclude.
func (e *Exclude) ChangeCount() uint64 {
	return e.changeCount
}
