// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !invariants && !race

package invariants

// Enabled is false if we were built without the "invariants" and "race"
// build tags. Expensive precondition checks are compiled out in that case.
const Enabled = false
