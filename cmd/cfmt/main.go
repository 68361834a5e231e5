// cmd/cfmt/main.go
package main

import (
	"os"

	"github.com/bjaus/cfmt/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
