package main

import (
	"os"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
