// Copyright 2026 Sharky Rawr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pakdata implements codecs for the fixed-layout pieces of the
// PAK format: the 12-byte archive header and the 64-byte directory
// records.
package pakdata
