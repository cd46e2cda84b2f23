// Command gardensim replays scripted input timelines against the character
// controller and prints what the character did.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
