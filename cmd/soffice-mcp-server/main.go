package main

import (
	"fmt"
	"os"

	"github.com/rafaelhlima/soffice-mcp-server/internal/server"
)

var version = "dev"

func main() {
	s := server.New(version)
	if err := s.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "soffice-mcp-server: %v\n", err)
		os.Exit(1)
	}
}
