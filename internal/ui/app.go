package ui

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/image-browser/internal/config"
	"github.com/Akaiko1/image-browser/internal/provider"
	"github.com/Akaiko1/image-browser/internal/viewer"
)

const (
	// UI Constants
	appTitle = "Image Browser"

	// Messages
	msgReady       = "Ready. Use File > Open to choose a directory"
	msgDropDirOnly = "please drop a folder, not a file"
)

// BrowserApp is the main window: a thumbnail grid of the chosen directory and a detail pane.
type BrowserApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config

	// Services
	loader provider.Loader

	// UI components
	thumbnails  *thumbnailGrid
	viewer      *viewer.ImageView
	statusLabel *widget.Label

	// State - UI thread only, no synchronization needed
	provider *provider.Provider
}

// NewBrowserApp creates a new BrowserApp with the given configuration.
func NewBrowserApp(cfg *config.Config) *BrowserApp {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fyneApp := app.New()
	fyneApp.SetIcon(theme.FileImageIcon())

	return newBrowserApp(fyneApp, cfg, provider.NewDirectoryLoader(cfg))
}

func newBrowserApp(fyneApp fyne.App, cfg *config.Config, loader provider.Loader) *BrowserApp {
	window := fyneApp.NewWindow(appTitle)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	browser := &BrowserApp{
		app:         fyneApp,
		window:      window,
		config:      cfg,
		loader:      loader,
		viewer:      viewer.NewImageView(),
		statusLabel: widget.NewLabel(msgReady),
	}
	browser.thumbnails = newThumbnailGrid(cfg, browser.activate)
	return browser
}

// Run starts the application and blocks until the window is closed.
func (app *BrowserApp) Run() {
	app.window.SetMainMenu(app.createMainMenu())
	app.window.SetContent(app.createMainContent())
	app.enableDragDrop()
	app.window.ShowAndRun()
}

// createMainMenu creates the File menu; fyne appends Quit to it.
func (app *BrowserApp) createMainMenu() *fyne.MainMenu {
	openItem := fyne.NewMenuItem("Open", app.handleOpenDirectory)
	return fyne.NewMainMenu(fyne.NewMenu("File", openItem))
}

// createMainContent lays out the thumbnail grid and the detail pane side by side.
func (app *BrowserApp) createMainContent() fyne.CanvasObject {
	split := container.NewHSplit(app.thumbnails.grid, app.viewer)
	split.SetOffset(app.config.SplitOffset)

	return container.NewBorder(nil, app.statusLabel, nil, nil, split)
}

// handleOpenDirectory asks for a directory and loads it.
func (app *BrowserApp) handleOpenDirectory() {
	folderDialog := dialog.NewFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			app.showError("Folder Selection Error", err)
			return
		}
		if folder == nil {
			return // User cancelled
		}

		if err := app.openDirectory(folder.Path()); err != nil {
			app.showError("Open Error", err)
		}
	}, app.window)

	if start := app.config.StartDirectory(); start != "" {
		location, err := storage.ListerForURI(storage.NewFileURI(start))
		if err == nil {
			folderDialog.SetLocation(location)
		}
	}
	folderDialog.Show()
}

// openDirectory builds a provider for path and rebinds the grid to it.
// On failure the current provider, grid and detail pane are left as they were.
func (app *BrowserApp) openDirectory(path string) error {
	log.Printf("Opening directory %s", path)

	p, err := app.loader.Load(path)
	if err != nil {
		app.statusLabel.SetText("Failed to load " + path)
		return err
	}

	app.provider = p
	app.thumbnails.Bind(p)
	app.viewer.Clear()
	app.statusLabel.SetText(fmt.Sprintf("Loaded %d images from %s", p.Count(), path))
	return nil
}

// activate shows entry id of the active provider in the detail pane.
func (app *BrowserApp) activate(id int) {
	if app.provider == nil || id < 0 || id >= app.provider.Count() {
		return
	}
	app.viewer.SetImage(app.provider.BitmapAt(id))
}

// showError shows an error dialog.
func (app *BrowserApp) showError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), app.window)
}

// enableDragDrop opens a directory dropped onto the window.
func (app *BrowserApp) enableDragDrop() {
	app.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		app.handleDrop(uris)
	})
}

// handleDrop opens the first dropped item if it is a local directory.
func (app *BrowserApp) handleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	uri := uris[0] // Take first dropped item

	if uri.Scheme() != "file" {
		dialog.ShowError(errors.New("invalid file path"), app.window)
		return
	}

	path := uri.Path()
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		log.Printf("Ignoring drop of %s", path)
		dialog.ShowError(errors.New(msgDropDirOnly), app.window)
		return
	}

	if err := app.openDirectory(path); err != nil {
		app.showError("Open Error", err)
	}
}
