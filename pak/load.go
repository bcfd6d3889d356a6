// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pak

import (
	"os"

	"go.chromium.org/luci/common/errors"

	"github.com/SharkyRawr/gopak/pak/pakdata"
)

// Load reads the archive at path entirely into memory and decodes it:
// header, then every directory record, then each record's byte range
// copied out of the file buffer.
//
// The returned archive owns all of its buffers; nothing references
// the read buffer once Load returns, so the archive stays valid no
// matter what happens to the file afterwards.
func Load(path string) (*Archive, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading archive").Err()
	}

	hdr, err := pakdata.ParseHeader(buf)
	if err != nil {
		return nil, errors.Annotate(err, "parsing header").Err()
	}
	if hdr.DirSize%pakdata.RecordLen != 0 {
		return nil, errors.Annotate(pakdata.ErrMalformedDirectory,
			"directory size %d is not a multiple of %d", hdr.DirSize, pakdata.RecordLen).Err()
	}
	if end := uint64(hdr.DirOffset) + uint64(hdr.DirSize); end > uint64(len(buf)) {
		return nil, errors.Annotate(pakdata.ErrOutOfBounds,
			"directory [%d,%d) exceeds %d byte archive", hdr.DirOffset, end, len(buf)).Err()
	}

	ar := New()
	ar.Path = path
	ar.Header = hdr

	numEntries := int(hdr.DirSize / pakdata.RecordLen)
	for i := 0; i < numEntries; i++ {
		start := int(hdr.DirOffset) + i*pakdata.RecordLen
		ent, err := pakdata.ParseRecord(buf[start:start+pakdata.RecordLen], buf)
		if err != nil {
			return nil, errors.Annotate(err, "decoding directory record %d", i).Err()
		}
		if err := ar.AddEntry(ent); err != nil {
			return nil, errors.Annotate(err, "decoding directory record %d", i).Err()
		}
	}
	return ar, nil
}
