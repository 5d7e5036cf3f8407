// Command euler prints the answer to Project Euler problem 1 for a given
// upper bound.
//
//	euler 1000
//	And the answer is .... 233168
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
