// Package main is the snp-profiles command. It builds every planning profile for the host and
// prints, exports or validates them.
package main

import (
	"log"
	"os"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
