package main

import (
	"fmt"

	"github.com/Styx-mls/BlackJack-q-learning/cmd"
)

// main entry point to training and replay
func main() {
	rootCommand := cmd.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
