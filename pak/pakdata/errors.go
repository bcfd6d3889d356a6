// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pakdata

import "go.chromium.org/luci/common/errors"

// Errors returned by the pakdata codecs. They come back annotated with
// context from the point of failure; match them with errors.Is.
var (
	// ErrMalformedHeader indicates a header shorter than HeaderLen or
	// one whose magic tag is not "PACK".
	ErrMalformedHeader = errors.New("malformed header")

	// ErrMalformedDirectory indicates a directory table whose size is
	// not a whole number of RecordLen records.
	ErrMalformedDirectory = errors.New("malformed directory")

	// ErrOutOfBounds indicates a declared byte range which exceeds the
	// archive buffer.
	ErrOutOfBounds = errors.New("entry out of bounds")

	// ErrInvalidEncoding indicates name bytes which are not valid text.
	ErrInvalidEncoding = errors.New("invalid name encoding")

	// ErrNameTooLong indicates a name which cannot fit the record's
	// 56-byte name field.
	ErrNameTooLong = errors.New("name too long")
)
