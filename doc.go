// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package gopak implements the PAK archive container used by Quake,
// Half-Life and other GoldSrc-derived engines to bundle game assets
// into a single file.
//
// It has a fairly basic format:
//   - 12-byte header: "PACK" magic, directory offset (LE u32),
//     directory size in bytes (LE u32).
//   - directory table: (directory size / 64) consecutive 64-byte
//     records, each a 56-byte NUL-padded name followed by the data
//     offset and size (both LE u32).
//   - entry data: raw bytes at each record's declared offset,
//     conventionally packed after the directory table.
//
// Unlike ZIP or XAR, PAK stores no compression, checksums, or file
// attributes; a record is nothing but a name and a byte range. The
// whole container is little-endian and the directory table is
// fixed-width, so it decodes with plain offset arithmetic.
//
// The pak package holds the archive aggregate (load, save, add,
// remove, append, extract); pak/pakdata holds the byte-level codecs
// for the header and the directory records.
package gopak
