// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pakdata

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"unicode/utf8"

	"go.chromium.org/luci/common/errors"
)

// Entry is one named blob stored in an archive, described by a 64-byte
// directory record. An Entry owns its data outright; nothing aliases
// the buffer it was decoded from.
type Entry struct {
	// Name is the path-like name stored in the record, e.g.
	// "maps/e1m1.bsp". At most NameLen bytes.
	Name string

	// Offset is the byte offset this entry's data was declared at,
	// either decoded from a record or projected by AppendFromDisk.
	// It is advisory: Archive.Save computes the real layout itself
	// and writes those offsets, not this field.
	Offset uint32

	// Size is the length of the data in bytes.
	Size uint32

	data []byte
}

// NewEntry builds an entry around a copy of data. The name must be
// non-empty and fit the record's name field.
func NewEntry(name string, data []byte) (*Entry, error) {
	if name == "" {
		return nil, errors.Annotate(ErrInvalidEncoding, "empty name").Err()
	}
	if len(name) > NameLen {
		return nil, errors.Annotate(ErrNameTooLong,
			"%q is %d bytes, max %d", name, len(name), NameLen).Err()
	}
	return &Entry{
		Name: name,
		Size: uint32(len(data)),
		data: append([]byte(nil), data...),
	}, nil
}

// Data returns the entry's contents. The slice is owned by the entry;
// callers must not modify it.
func (e *Entry) Data() []byte {
	return e.data
}

// ParseRecord decodes one 64-byte directory record and copies the
// described byte range out of archive (the whole archive file's
// bytes).
//
// The name is everything in bytes [0,56) before the first NUL (the
// whole field if there is none), trimmed of surrounding whitespace.
// Bytes [56,60) and [60,64) are the little-endian data offset and
// size.
func ParseRecord(record, archive []byte) (*Entry, error) {
	if len(record) != RecordLen {
		return nil, errors.Annotate(ErrMalformedDirectory,
			"record is %d bytes, want %d", len(record), RecordLen).Err()
	}

	nameField := record[:NameLen]
	if i := bytes.IndexByte(nameField, 0); i >= 0 {
		nameField = nameField[:i]
	}
	name := strings.TrimSpace(string(nameField))
	if !utf8.ValidString(name) {
		return nil, errors.Annotate(ErrInvalidEncoding, "name %q", name).Err()
	}

	offset := binary.LittleEndian.Uint32(record[NameLen : NameLen+4])
	size := binary.LittleEndian.Uint32(record[NameLen+4:])
	// 64-bit math so a corrupt record can't wrap around the bounds
	// check.
	if uint64(offset)+uint64(size) > uint64(len(archive)) {
		return nil, errors.Annotate(ErrOutOfBounds,
			"%q: [%d,%d) exceeds %d byte archive",
			name, offset, uint64(offset)+uint64(size), len(archive)).Err()
	}

	return &Entry{
		Name:   name,
		Offset: offset,
		Size:   size,
		data:   append([]byte(nil), archive[int(offset):int(offset)+int(size)]...),
	}, nil
}

// WriteRecord encodes the entry's 64-byte directory record to w,
// declaring its data to live at offset. The name is left-justified in
// the 56-byte field and zero-padded; a name over NameLen bytes is
// rejected, never truncated, since truncation would corrupt the round
// trip.
func (e *Entry) WriteRecord(w io.Writer, offset uint32) error {
	if len(e.Name) > NameLen {
		return errors.Annotate(ErrNameTooLong,
			"%q is %d bytes, max %d", e.Name, len(e.Name), NameLen).Err()
	}
	buf := make([]byte, RecordLen)
	copy(buf, e.Name)
	binary.LittleEndian.PutUint32(buf[NameLen:], offset)
	binary.LittleEndian.PutUint32(buf[NameLen+4:], uint32(len(e.data)))
	_, err := w.Write(buf)
	return err
}
