// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pflagcompat provides a adapter for [nflag] that is compatible
// with the [github.com/spf13/pflag] flag definition API.
package pflagcompat
