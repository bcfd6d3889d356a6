// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pak

import (
	"os"

	"go.chromium.org/luci/common/errors"

	"github.com/SharkyRawr/gopak/pak/pakdata"
)

// AppendFromDisk reads the file at srcPath and adds it to the archive
// under archiveName.
//
// The new entry's Offset field is its projected position in the next
// save's layout (header, directory table including this entry's
// record, then the data of every earlier entry). The on-disk archive
// is never consulted, so appending to an archive with unsaved edits
// stays consistent; Save computes the authoritative layout either
// way.
func (a *Archive) AppendFromDisk(srcPath, archiveName string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return errors.Annotate(err, "reading source file").Err()
	}
	ent, err := pakdata.NewEntry(archiveName, data)
	if err != nil {
		return errors.Annotate(err, "building entry for %q", srcPath).Err()
	}

	off := uint32(pakdata.HeaderLen + (len(a.entries)+1)*pakdata.RecordLen)
	for _, e := range a.entries {
		off += uint32(len(e.Data()))
	}
	ent.Offset = off

	return a.AddEntry(ent)
}
