// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bimap

import (
	"errors"
)

// ErrNotFound describes a lookup through AtLeft or AtRight for a key that is
// not present on the queried side.  Returned errors wrap this value so
// callers can test for it with errors.Is.
var ErrNotFound = errors.New("key not found")
