// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates expensive precondition checks behind the
// "invariants" build tag (also enabled under "race"). Code guarded by
// Enabled is compiled out of regular builds.
package invariants
