// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pakdata

import (
	"encoding/binary"
	"io"

	"go.chromium.org/luci/common/errors"
)

// Magic is the 4-byte tag which appears at the beginning of a PAK
// archive. It is not NUL-terminated.
const Magic = "PACK"

// Sizes of the fixed-layout pieces of the format.
const (
	// HeaderLen is the size of the archive header: the magic tag plus
	// the directory offset and size fields.
	HeaderLen = 12

	// RecordLen is the size of one directory record.
	RecordLen = 64

	// NameLen is the size of a record's NUL-padded name field.
	NameLen = 56
)

// Header is the fixed 12-byte header at the start of every archive.
type Header struct {
	// Tag is the magic identifier; Magic for every archive this
	// package writes. Write emits it verbatim, so callers building
	// a Header by hand must keep it exactly 4 bytes.
	Tag string

	// DirOffset is the byte offset of the directory table.
	DirOffset uint32

	// DirSize is the directory table's size in bytes; a multiple of
	// RecordLen in a well-formed archive.
	DirSize uint32
}

// NewHeader returns a Header with the PACK tag and zeroed fields.
func NewHeader() Header {
	return Header{Tag: Magic}
}

// ParseHeader decodes the 12-byte header from the front of buf and
// checks that it carries the PACK magic. Anything past HeaderLen is
// ignored.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLen {
		return Header{}, errors.Annotate(ErrMalformedHeader,
			"%d byte(s), want at least %d", len(buf), HeaderLen).Err()
	}
	tag := string(buf[0:4])
	if tag != Magic {
		return Header{}, errors.Annotate(ErrMalformedHeader, "bad magic %q", tag).Err()
	}
	return Header{
		Tag:       tag,
		DirOffset: binary.LittleEndian.Uint32(buf[4:8]),
		DirSize:   binary.LittleEndian.Uint32(buf[8:12]),
	}, nil
}

// Write encodes the header to w: the tag verbatim, then the directory
// offset and size as little-endian u32. Produces exactly HeaderLen
// bytes for a well-formed (4-byte) tag.
func (h Header) Write(w io.Writer) error {
	buf := make([]byte, 0, HeaderLen)
	buf = append(buf, h.Tag...)
	buf = binary.LittleEndian.AppendUint32(buf, h.DirOffset)
	buf = binary.LittleEndian.AppendUint32(buf, h.DirSize)
	_, err := w.Write(buf)
	return err
}
