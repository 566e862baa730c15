// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package interval

import "strconv"

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
