// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package disalloweq provides a method for disallowing struct comparisons
// with the `==` operator.
package disalloweq

// DisallowEqual can be embedded in a struct to make the compiler reject
// attempts to compare instances with the `==` operator.  Comparing field
// elements limb-wise with `==` happens to be correct, but routing all
// comparisons through the explicit constant-time predicates removes the
// temptation entirely.
//
// See: https://twitter.com/bradfitz/status/860145039573385216
type DisallowEqual [0]func()
