// Package geo resolves postal locations to great-circle distances using a
// static ZIP-to-coordinate table. Locations that cannot be resolved are
// reported as unknown, never guessed.
package geo

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// earthRadiusMiles is the haversine Earth radius.
const earthRadiusMiles = 3959

var zipPattern = regexp.MustCompile(`\b\d{5}(-\d{4})?\b`)

type coordinates struct {
	lat float64
	lng float64
}

// zipCoordinates maps US ZIP codes to coordinates for the Los Angeles metro
// area served by the company. Unknown ZIPs degrade to an unresolvable
// distance rather than an approximation.
var zipCoordinates = map[string]coordinates{
	// Glendale
	"91201": {34.1689, -118.2452},
	"91202": {34.1633, -118.2582},
	"91203": {34.1494, -118.2508},
	"91204": {34.1422, -118.2653},
	"91205": {34.1425, -118.2372},
	"91206": {34.1308, -118.2556},
	"91207": {34.1550, -118.2333},
	"91208": {34.1611, -118.2711},
	"90001": {33.9731, -118.2479}, // Los Angeles
	"90210": {34.0901, -118.4065}, // Beverly Hills
	"91101": {34.1478, -118.1445}, // Pasadena
	"91801": {34.1064, -118.1280}, // Alhambra
	"91001": {34.0966, -118.0356}, // Altadena
	"90245": {33.9425, -118.3956}, // El Segundo
	"90266": {33.8894, -118.3966}, // Manhattan Beach
	"90401": {34.0195, -118.4912}, // Santa Monica
	"90028": {34.0928, -118.3287}, // Hollywood
	"91401": {34.1814, -118.4481}, // Van Nuys
	"91301": {34.1683, -118.6059}, // Agoura Hills
	"91501": {34.1808, -118.3090}, // Burbank
	"91601": {34.1688, -118.3760}, // North Hollywood
	"90250": {33.8755, -118.3287}, // Hawthorne
	"90260": {33.9880, -118.1596}, // Lawndale
	"90301": {33.9164, -118.3526}, // Inglewood
	"90501": {33.8358, -118.3406}, // Torrance
	"90601": {33.9464, -118.0838}, // Whittier
	"90650": {33.9802, -118.0647}, // Norwalk
	"90071": {34.0520, -118.2560}, // Downtown LA
	"90802": {33.7701, -118.1937}, // Long Beach
	"92805": {33.8353, -117.9099}, // Anaheim
	"92501": {33.9944, -117.3709}, // Riverside
	"92614": {33.6846, -117.8265}, // Irvine
	"90754": {34.0625, -118.1228}, // Monterey Park
	"94102": {37.7786, -122.4192}, // San Francisco
}

// Location holds the parsed parts of a free-form location string.
type Location struct {
	City  string
	State string
	Zip   string
}

// ExtractZip returns the first 5-digit ZIP code found in the address, or an
// empty string when none is present. A ZIP+4 suffix is dropped.
func ExtractZip(address string) string {
	match := zipPattern.FindString(address)
	if match == "" {
		return ""
	}
	return match[:5]
}

// ParseLocation splits a "City, ST 91201" style string into parts. Any part
// may be absent.
func ParseLocation(location string) Location {
	parsed := Location{Zip: ExtractZip(location)}

	parts := strings.Split(location, ",")
	if len(parts) >= 2 {
		parsed.City = strings.TrimSpace(parts[0])
		state := zipPattern.ReplaceAllString(parts[1], "")
		state = strings.TrimSpace(state)
		if len(state) == 2 {
			parsed.State = state
		}
	}

	return parsed
}

// Distance computes the great-circle distance in miles between two location
// strings. ok is false when either location has no ZIP code or the ZIP is
// not in the coordinate table.
func Distance(locationA, locationB string) (float64, bool) {
	if locationA == "" || locationB == "" {
		return 0, false
	}

	zipA := ExtractZip(locationA)
	zipB := ExtractZip(locationB)
	if zipA == "" || zipB == "" {
		return 0, false
	}

	coordsA, okA := zipCoordinates[zipA]
	coordsB, okB := zipCoordinates[zipB]
	if !okA || !okB {
		return 0, false
	}

	return haversine(coordsA, coordsB), true
}

// WithinRadius reports whether the two locations are at most radiusMiles
// apart. An unresolvable distance counts as outside the radius: inability to
// verify a location is a mismatch, not a pass. The boundary is inclusive.
func WithinRadius(locationA, locationB string, radiusMiles float64) bool {
	distance, ok := Distance(locationA, locationB)
	if !ok {
		return false
	}
	return distance <= radiusMiles
}

func haversine(a, b coordinates) float64 {
	dLat := toRadians(b.lat - a.lat)
	dLng := toRadians(b.lng - a.lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.lat))*math.Cos(toRadians(b.lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// FormatDistance renders a distance for reports.
func FormatDistance(miles float64) string {
	switch {
	case miles < 1:
		return "Less than 1 mile"
	case math.Round(miles) == 1:
		return "1 mile"
	default:
		return fmt.Sprintf("%.0f miles", math.Round(miles))
	}
}

// EstimateDrivingTime gives a rough drive time assuming 30 mph urban speed.
func EstimateDrivingTime(miles float64) string {
	hours := miles / 30
	if hours < 1 {
		return fmt.Sprintf("%.0f min", math.Round(hours*60))
	}

	whole := math.Floor(hours)
	minutes := math.Round((hours - whole) * 60)
	if minutes == 0 {
		return fmt.Sprintf("%.0f hr", whole)
	}
	return fmt.Sprintf("%.0f hr %.0f min", whole, minutes)
}
