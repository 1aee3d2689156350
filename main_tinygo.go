//go:build tinygo

package main

import (
	"glim/app"
	"glim/hal"
)

func main() {
	app.Run(hal.New())
}
