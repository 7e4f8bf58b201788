// Command sitectl checks the site content catalogs and prepares operator
// credentials.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
