// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pakdata

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	. "go.chromium.org/luci/common/testing/assertions"
)

func TestHeader(t *testing.T) {
	t.Parallel()

	Convey("Header", t, func() {
		Convey("write", func() {
			buf := &bytes.Buffer{}
			h := NewHeader()
			h.DirOffset = 12
			h.DirSize = 64
			So(h.Write(buf), ShouldBeNil)
			So(buf.Bytes(), ShouldResemble, []byte{
				'P', 'A', 'C', 'K',
				12, 0, 0, 0,
				64, 0, 0, 0,
			})
		})

		Convey("parse", func() {
			Convey("good", func() {
				h, err := ParseHeader([]byte{
					'P', 'A', 'C', 'K',
					76, 0, 0, 0,
					128, 0, 0, 0,
				})
				So(err, ShouldBeNil)
				So(h, ShouldResemble, Header{Tag: "PACK", DirOffset: 76, DirSize: 128})
			})

			Convey("ignores bytes past the header", func() {
				h, err := ParseHeader(append([]byte{
					'P', 'A', 'C', 'K',
					12, 0, 0, 0,
					0, 0, 0, 0,
				}, 0xde, 0xad, 0xbe, 0xef))
				So(err, ShouldBeNil)
				So(h.DirOffset, ShouldEqual, 12)
			})

			Convey("short", func() {
				_, err := ParseHeader([]byte{'P', 'A', 'C'})
				So(err, ShouldErrLike, "3 byte(s), want at least 12")
				So(errors.Is(err, ErrMalformedHeader), ShouldBeTrue)
			})

			Convey("bad magic", func() {
				_, err := ParseHeader([]byte{
					'P', 'A', 'K', '2',
					12, 0, 0, 0,
					0, 0, 0, 0,
				})
				So(err, ShouldErrLike, `bad magic "PAK2"`)
				So(errors.Is(err, ErrMalformedHeader), ShouldBeTrue)
			})
		})

		Convey("round trip", func() {
			buf := &bytes.Buffer{}
			h := Header{Tag: Magic, DirOffset: 1234, DirSize: 64 * 9}
			So(h.Write(buf), ShouldBeNil)
			So(buf.Len(), ShouldEqual, HeaderLen)

			parsed, err := ParseHeader(buf.Bytes())
			So(err, ShouldBeNil)
			So(parsed, ShouldResemble, h)
		})
	})
}
