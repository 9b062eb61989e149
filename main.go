package main

import (
	"os"

	"github.com/ucmcp/ucmcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
