// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pak reads, edits and writes PAK archives as whole in-memory
// aggregates: load a file, add or remove entries, then save. Saving
// recomputes the entire layout (header, directory table, data) from
// the current entry list, so entry offsets on disk are always
// consistent no matter how the archive was edited.
package pak
