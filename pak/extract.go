// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pak

import (
	"os"
	"path/filepath"

	"go.chromium.org/luci/common/errors"
)

// Extract writes the named entry's data to destPath and returns the
// path it wrote.
//
// With preserveDirs, destPath's directory components are created
// first, so "out/maps/e1m1.bsp" lands under out/maps/. Without it,
// only destPath's final component is kept and the file is written to
// the current directory.
func (a *Archive) Extract(name, destPath string, preserveDirs bool) (string, error) {
	ent, ok := a.Lookup(name)
	if !ok {
		return "", errors.Annotate(ErrNotFound, "%q", name).Err()
	}

	if preserveDirs {
		if dir := filepath.Dir(destPath); dir != "." {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return "", errors.Annotate(err, "making directories for %q", destPath).Err()
			}
		}
	} else {
		destPath = filepath.Base(destPath)
	}

	if err := os.WriteFile(destPath, ent.Data(), 0666); err != nil {
		return "", errors.Annotate(err, "writing %q", destPath).Err()
	}
	return destPath, nil
}
