// SPDX-License-Identifier: MIT

// Command timefmt validates, inspects & applies time format descriptions.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
