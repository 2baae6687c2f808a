// Command rawmem scans and patches files mapped into memory using AOB patterns.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
