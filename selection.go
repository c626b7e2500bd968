// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

// Select performs (mu+lambda) elitist truncation selection (spec §4.5.6):
// concatenate parents and children, sort ascending by fitness, keep the
// first len(parents). No duplicate filtering.
func Select(parents, children Population) Population {
	combined := parents.Concat(children)
	return combined.Prune(len(parents))
}
