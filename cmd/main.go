// Package main implements a desktop image browser: a thumbnail grid of the JPEG images in a
// chosen directory next to a pane showing the clicked image scaled to fit, using the Fyne framework.
package main

import (
	"log"

	"github.com/Akaiko1/image-browser/internal/config"
	"github.com/Akaiko1/image-browser/internal/ui"
)

func main() {
	log.Println("Starting Image Browser...")

	config := config.DefaultConfig()
	log.Printf("Config: Extension=%s, IconSize=%.0f, Cell=%.0fx%.0f",
		config.Extension, config.IconSize, config.CellWidth, config.CellHeight)

	app := ui.NewBrowserApp(config)
	log.Println("App created, starting UI...")

	app.Run()
}
