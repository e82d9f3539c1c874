package main

import (
	"fmt"
	"os"

	"github.com/vskvj3/nbtkit/internal/utils"
)

func main() {
	err := newRootCmd().Execute()
	// PersistentPostRunE is skipped when a command fails.
	utils.CloseLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
