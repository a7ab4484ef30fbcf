// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/penrose"
)

// EventForKey maps a key press to the tiling event it triggers.
// It returns false for keys with no binding.
func EventForKey(key gpucontext.Key) (penrose.Event, bool) {
	switch key {
	case gpucontext.KeyUp:
		return penrose.IncreaseDepth, true
	case gpucontext.KeyDown:
		return penrose.DecreaseDepth, true
	case gpucontext.KeyTab:
		return penrose.ToggleFamily, true
	}
	return 0, false
}
