package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/citygrid/crimemaps/internal/domain"
)

type dashboardPage struct {
	Title       string
	Map         template.HTML
	Charts      []template.HTML
	GeneratedAt string
}

type hotspotsPage struct {
	Title string
	Map   template.HTML
}

// WriteDashboard assembles the map fragment and chart fragments into one
// self-contained document (map above, analytics grid below) and writes it,
// overwriting any existing file. The document is rendered fully in memory
// first, so a template failure leaves no partial output on disk.
func WriteDashboard(path string, mapHTML template.HTML, charts []template.HTML) error {
	return writeDocument(path, "dashboard_page.tmpl", dashboardPage{
		Title:       "Chicago Homicides Dashboard",
		Map:         mapHTML,
		Charts:      charts,
		GeneratedAt: domain.Now().Format(time.RFC1123),
	})
}

// WriteHotspots writes the standalone choropleth document.
func WriteHotspots(path string, mapHTML template.HTML) error {
	return writeDocument(path, "hotspots_page.tmpl", hotspotsPage{
		Title: "Chicago Crime Hotspots",
		Map:   mapHTML,
	})
}

func writeDocument(path, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("assemble %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
