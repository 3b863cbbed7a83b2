// cmd/shopfront/main.go
package main

import (
	"os"

	"shopfront/internal/adapters/in/cli"
)

func main() {
	os.Exit(cli.Execute())
}
