// Package category implements the car category classifier (C1) and the
// static category-targets table (C2) from spec §4.1/§4.2.
package category

import (
	"strings"

	"github.com/raceeng/setupgen/internal/model"
)

var formulaSubstrings = []string{"formula", "f1", "f2", "f3", "f4", "rss_formula", "fia_f"}
var prototypeSubstrings = []string{"lmp", "lmp1", "lmp2", "lmp3", "prototype", "p1", "p2"}
var gtSubstrings = []string{"gt3", "gt2", "gt4", "gte", "gtc", "gt1", "dtm", "tcr"}
var vintageSubstrings = []string{"vintage", "classic", "historic", "1960", "1970", "60s", "70s"}
var streetSportSubstrings = []string{
	"gt4", "m3", "m4", "m5", "rs", "gtr", "911", "cayman", "boxster",
	"corvette", "viper", "amg", "type_r", "sti", "evo",
}

// Classify maps a car descriptor to exactly one category tag. Rules are
// evaluated in strict priority order; the first match wins, so the
// function is total and deterministic (spec §4.1, testable property 2).
func Classify(car model.CarDescriptor) model.CategoryTag {
	haystack := strings.ToLower(car.CarID + " " + car.DisplayName + " " + car.ClassHint)

	if car.IsDriftCar || strings.Contains(haystack, "drift") {
		return model.CategoryDrift
	}
	if containsAny(haystack, formulaSubstrings) {
		return model.CategoryFormula
	}
	if containsAny(haystack, prototypeSubstrings) {
		return model.CategoryPrototype
	}
	if containsAny(haystack, gtSubstrings) {
		return model.CategoryGT
	}
	if containsAny(haystack, vintageSubstrings) || isUnderpoweredVintage(car) {
		return model.CategoryVintage
	}
	if isStreetSport(car, haystack) {
		return model.CategoryStreetSport
	}
	return model.CategoryStreet
}

func isUnderpoweredVintage(car model.CarDescriptor) bool {
	if car.PowerHP == nil || car.WeightKg == nil || *car.WeightKg <= 0 {
		return false
	}
	return *car.PowerHP < 250 && (*car.PowerHP / *car.WeightKg) < 0.15
}

func isStreetSport(car model.CarDescriptor, haystack string) bool {
	if car.PowerHP != nil && car.WeightKg != nil && *car.WeightKg > 0 {
		ratio := *car.PowerHP / *car.WeightKg
		if ratio >= 0.25 && ratio <= 0.45 {
			return true
		}
		if containsAny(haystack, streetSportSubstrings) && *car.PowerHP > 250 && *car.WeightKg < 1500 {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
