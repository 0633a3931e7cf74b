// Command keytool generates and checks the cryptographic material the
// server needs: the deployment secret key, user salts, and derivation
// benchmarks for choosing an iteration count.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
