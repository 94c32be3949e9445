package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(successStyle.Render("✅ Background created"))
}

// run draws the background artwork and writes it to the working
// directory, overwriting any previous output.
func run() error {
	dc := renderBackground()
	if err := dc.SavePNG(outputName); err != nil {
		return fmt.Errorf("failed to save %s: %v", outputName, err)
	}
	return nil
}
