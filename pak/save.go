// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pak

import (
	"os"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/iotools"

	"github.com/SharkyRawr/gopak/pak/pakdata"
)

// Save writes the archive to path: the 12-byte header, then every
// directory record, then every entry's data packed contiguously in
// directory order.
//
// The layout is recomputed from scratch on every save — the header's
// directory fields and each record's offset come from the current
// entry list, never from the possibly-stale values stored on the
// archive or its entries. Save does not mutate the archive.
//
// Writes are sequential with no temp-file-and-rename step, so an I/O
// failure mid-save can leave a truncated file at path.
func (a *Archive) Save(path string) (err error) {
	offsets := a.layout()

	f, err := os.Create(path)
	if err != nil {
		return errors.Annotate(err, "creating archive").Err()
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Annotate(cerr, "closing archive").Err()
		}
	}()

	cw := &iotools.CountingWriter{Writer: f}

	hdr := pakdata.NewHeader()
	hdr.DirOffset = pakdata.HeaderLen
	hdr.DirSize = uint32(len(a.entries) * pakdata.RecordLen)
	if err := hdr.Write(cw); err != nil {
		return errors.Annotate(err, "writing header").Err()
	}

	for i, e := range a.entries {
		if err := e.WriteRecord(cw, offsets[i]); err != nil {
			return errors.Annotate(err, "writing directory record for %q", e.Name).Err()
		}
	}

	for i, e := range a.entries {
		// The cursor must sit exactly where the directory said this
		// entry's data would be; anything else means the file would
		// be silently corrupt.
		if cw.Count != int64(offsets[i]) {
			return errors.Reason("layout drift writing %q: at byte %d, directory says %d",
				e.Name, cw.Count, offsets[i]).Err()
		}
		if _, err := cw.Write(e.Data()); err != nil {
			return errors.Annotate(err, "writing data for %q", e.Name).Err()
		}
	}
	return nil
}

// layout computes each entry's data offset for the next save: header,
// then the directory table, then the data packed in directory order.
func (a *Archive) layout() []uint32 {
	offsets := make([]uint32, len(a.entries))
	off := uint32(pakdata.HeaderLen + len(a.entries)*pakdata.RecordLen)
	for i, e := range a.entries {
		offsets[i] = off
		off += uint32(len(e.Data()))
	}
	return offsets
}
