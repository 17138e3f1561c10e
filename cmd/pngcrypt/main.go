// Command pngcrypt embeds, recovers, and strips secret messages in PNG
// images from the command line.
//
// Usage:
//
//	pngcrypt encode -f photo.png -m "meet at dawn" -o photo-secret.png
//	pngcrypt decode -f photo-secret.png -t xqRT
//	pngcrypt remove -f photo-secret.png -t xqRT
//	pngcrypt print  -f photo-secret.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pngcrypt:", err)
		os.Exit(1)
	}
}
