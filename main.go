package main

import (
	"os"

	"notecal/internal/cli"
	"notecal/internal/logs"
)

func main() {
	err := cli.New().Execute()
	logs.Close()
	if err != nil {
		os.Exit(1)
	}
}
