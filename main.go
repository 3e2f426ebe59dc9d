package main

import (
	"ecschess/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunECSChess(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
