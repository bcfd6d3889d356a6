// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pak

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	. "go.chromium.org/luci/common/testing/assertions"
)

// No t.Parallel: the flat-extract case writes to the working
// directory, so this test chdirs into a temp dir.
func TestExtract(t *testing.T) {
	Convey("Extract", t, func() {
		tmp := t.TempDir()

		a := New()
		So(a.AddEntry(mustEntry("maps/e1m1.bsp", "bsp payload")), ShouldBeNil)

		Convey("preserving directory structure", func() {
			dest := filepath.Join(tmp, "out", "maps", "e1m1.bsp")
			written, err := a.Extract("maps/e1m1.bsp", dest, true)
			So(err, ShouldBeNil)
			So(written, ShouldEqual, dest)

			data, err := os.ReadFile(dest)
			So(err, ShouldBeNil)
			So(data, ShouldResemble, []byte("bsp payload"))
		})

		Convey("flat, dropping the directory prefix", func() {
			orig, err := os.Getwd()
			So(err, ShouldBeNil)
			So(os.Chdir(tmp), ShouldBeNil)
			defer func() { _ = os.Chdir(orig) }()

			written, err := a.Extract("maps/e1m1.bsp", filepath.Join("deep", "maps", "e1m1.bsp"), false)
			So(err, ShouldBeNil)
			So(written, ShouldEqual, "e1m1.bsp")

			data, err := os.ReadFile(filepath.Join(tmp, "e1m1.bsp"))
			So(err, ShouldBeNil)
			So(data, ShouldResemble, []byte("bsp payload"))

			// No directories were created for the discarded prefix.
			_, err = os.Stat(filepath.Join(tmp, "deep"))
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("unknown name", func() {
			_, err := a.Extract("missing.bsp", filepath.Join(tmp, "x"), true)
			So(err, ShouldErrLike, `"missing.bsp": entry not found`)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}
