// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pak

import (
	"fmt"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"

	"github.com/SharkyRawr/gopak/pak/pakdata"
)

// Errors returned by archive mutations and lookups. Match with
// errors.Is.
var (
	// ErrDuplicateName indicates an entry name already present in the
	// archive (exact, case-sensitive match).
	ErrDuplicateName = errors.New("duplicate entry name")

	// ErrNotFound indicates a name with no matching entry.
	ErrNotFound = errors.New("entry not found")
)

// Archive is an in-memory PAK container: the header plus the ordered
// entry list. Entry order is the directory-table order and is
// preserved across load and save; entry names are unique within one
// archive.
//
// An Archive is not safe for concurrent use. The format has no
// locking or versioning, so two writers racing on the same backing
// file will corrupt the directory table.
type Archive struct {
	// Path is the archive's backing file: the path it was loaded
	// from, or "" for an archive built from scratch.
	Path string

	// Header is the header as loaded, or a fresh PACK header. Its
	// offset/size fields are recomputed from scratch on every Save
	// and go stale as soon as the entry list is edited.
	Header pakdata.Header

	entries []*pakdata.Entry
	names   stringset.Set
}

// New returns an empty archive with no backing file.
func New() *Archive {
	return &Archive{
		Header: pakdata.NewHeader(),
		names:  stringset.New(0),
	}
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Entries returns the entries in directory-table order. The slice is
// owned by the archive.
func (a *Archive) Entries() []*pakdata.Entry {
	return a.entries
}

// Names returns the entry names in directory-table order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.entries))
	for i, e := range a.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry whose name matches exactly.
func (a *Archive) Lookup(name string) (*pakdata.Entry, bool) {
	if !a.names.Has(name) {
		return nil, false
	}
	for _, e := range a.entries {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// AddEntry appends e to the entry list. Adding a name already present
// fails with ErrDuplicateName and leaves the archive unchanged. This
// is a pure in-memory edit; the header stays stale until Save.
func (a *Archive) AddEntry(e *pakdata.Entry) error {
	if a.names == nil {
		a.names = stringset.New(1)
	}
	if !a.names.Add(e.Name) {
		return errors.Annotate(ErrDuplicateName, "%q", e.Name).Err()
	}
	a.entries = append(a.entries, e)
	return nil
}

// RemoveEntry removes the entry whose name matches exactly.
func (a *Archive) RemoveEntry(name string) error {
	for i, e := range a.entries {
		if e.Name == name {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			a.names.Del(name)
			return nil
		}
	}
	return errors.Annotate(ErrNotFound, "%q", name).Err()
}

func (a *Archive) String() string {
	return fmt.Sprintf("<Pak archive %q with %d entries>", a.Path, len(a.entries))
}
