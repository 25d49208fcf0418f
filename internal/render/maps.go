package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/paulmach/orb/geojson"

	"github.com/citygrid/crimemaps/internal/domain"
	"github.com/citygrid/crimemaps/internal/spatial"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Base map view centered on Chicago.
const (
	mapCenterLat = 41.8781
	mapCenterLon = -87.6298
	mapZoom      = 11
)

type marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
}

type yearLayer struct {
	Year    int          `json:"year"`
	Markers []marker     `json:"markers"`
	Heat    [][2]float64 `json:"heat"`
}

type dashboardMapData struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Years     []int
	Layers    template.JS
}

// BuildDashboardMap renders the Leaflet fragment carrying one cluster layer
// and one heatmap layer per year in the inclusive range. Years without
// incidents still get (empty) layers so the control panel stays consistent.
func BuildDashboardMap(incidents []domain.Incident, yearStart, yearEnd int) (template.HTML, error) {
	var layers []yearLayer
	var years []int
	for year := yearStart; year <= yearEnd; year++ {
		layer := yearLayer{Year: year, Markers: []marker{}, Heat: [][2]float64{}}
		for _, inc := range incidents {
			if inc.Year != year {
				continue
			}
			layer.Markers = append(layer.Markers, marker{
				Lat:   inc.Latitude,
				Lon:   inc.Longitude,
				Popup: markerPopup(inc),
			})
			layer.Heat = append(layer.Heat, [2]float64{inc.Latitude, inc.Longitude})
		}
		layers = append(layers, layer)
		years = append(years, year)
	}

	raw, err := json.Marshal(layers)
	if err != nil {
		return "", fmt.Errorf("marshal year layers: %w", err)
	}

	return executeFragment("dashboard_map.tmpl", dashboardMapData{
		CenterLat: mapCenterLat,
		CenterLon: mapCenterLon,
		Zoom:      mapZoom,
		Years:     years,
		Layers:    template.JS(raw),
	})
}

// markerPopup builds the popup HTML for one incident, escaping field values.
func markerPopup(inc domain.Incident) string {
	return fmt.Sprintf("Case Number: %s<br>Date: %s<br>Description: %s",
		template.HTMLEscapeString(inc.CaseNumber),
		template.HTMLEscapeString(inc.OccurredAt.Format("2006-01-02 15:04:05")),
		template.HTMLEscapeString(inc.Description),
	)
}

type choroplethMapData struct {
	CenterLat  float64
	CenterLon  float64
	Zoom       int
	Regions    template.JS
	Heat       template.JS
	MinDensity string
	MaxDensity string
}

// BuildChoroplethMap renders the Leaflet fragment with density-shaded region
// polygons, hover tooltips, a gradient legend over the observed density
// range, and a heatmap overlay of the raw incident points.
func BuildChoroplethMap(stats []spatial.RegionStat, incidents []domain.Incident) (template.HTML, error) {
	min, max := spatial.DensityRange(stats)

	fc := geojson.NewFeatureCollection()
	for _, s := range stats {
		f := geojson.NewFeature(s.Boundary.Geometry)
		f.Properties = geojson.Properties{
			"community":     s.Boundary.Name,
			"crime_count":   s.Count,
			"crime_density": s.Density,
			"fill_color":    densityColor(s.Density, min, max),
		}
		fc.Append(f)
	}

	regions, err := fc.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal region features: %w", err)
	}

	heat := make([][2]float64, 0, len(incidents))
	for _, inc := range incidents {
		heat = append(heat, [2]float64{inc.Latitude, inc.Longitude})
	}
	heatRaw, err := json.Marshal(heat)
	if err != nil {
		return "", fmt.Errorf("marshal heat points: %w", err)
	}

	return executeFragment("choropleth_map.tmpl", choroplethMapData{
		CenterLat:  mapCenterLat,
		CenterLon:  mapCenterLon,
		Zoom:       mapZoom,
		Regions:    template.JS(regions),
		Heat:       template.JS(heatRaw),
		MinDensity: fmt.Sprintf("%.2f", min),
		MaxDensity: fmt.Sprintf("%.2f", max),
	})
}

func executeFragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
