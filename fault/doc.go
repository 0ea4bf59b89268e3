// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error so that callers can
// compare by identity instead of matching message text.  Every error
// belongs to a class and the Is… predicates test class membership.
package fault
