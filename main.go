package main

import (
	"fmt"
	"os"

	"aarogya/internal/ui"
)

func main() {
	p := ui.NewProgram()
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(*ui.Model); ok && m.DB != nil {
		m.DB.Close()
	}
}
