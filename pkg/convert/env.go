// env.go - default environment indirection backing EnvLookup.
// SPDX-License-Identifier: GPL-3.0-or-later
package convert

import "os"

func defaultEnvLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
