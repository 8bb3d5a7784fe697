// cmd/packstack/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arc-language/packstack"
	"github.com/arc-language/packstack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, packstack.ErrNoSelection) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
