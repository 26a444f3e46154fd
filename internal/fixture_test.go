package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into planar point sets. This is not a full
// (or even correct) svg parser. Every circle is an input point, at its center.
// The single polygon lists the expected hull, starting at the lowest point and
// going counterclockwise. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type planarFixture struct {
	Points []PlanarPoint
	Hull   []PlanarPoint
}

func LoadFixture(name string) planarFixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var result planarFixture
	for _, circleEl := range rootEl.FindAll("circle") {
		result.Points = append(result.Points, PlanarPoint{
			X: parseCoordinate(circleEl.Attributes["cx"]),
			Y: parseCoordinate(circleEl.Attributes["cy"]),
		})
	}
	if len(result.Points) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		result.Hull = append(result.Hull, PlanarPoint{
			X: parseCoordinate(pointStrings[0]),
			Y: parseCoordinate(pointStrings[1]),
		})
	}
	return result
}

func parseCoordinate(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return value
}
