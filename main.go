package main

import (
	"os"

	"github.com/guardiancrow/randomstring/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
