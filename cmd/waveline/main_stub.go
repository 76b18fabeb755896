//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of waveline requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/waveline` or build with `-tags ebiten`, or use ./cmd/wavetty in a terminal.")
	os.Exit(2)
}
