// Package convert implements the smart converter (C8, spec §4.7): turning
// physical-unit values into the integers a car's own setup file expects,
// using click-table interpolation when the car is click-based and plain
// rounding when it is not.
package convert

import "github.com/raceeng/setupgen/internal/model"

// Range describes one parameter family's click table: max_clicks == 0
// means the family is always absolute for that category (clamp + round,
// no interpolation).
type Range struct {
	Min       float64
	Max       float64
	MaxClicks int
	Unit      string
}

// DefaultRanges are the category click tables used when no per-car
// override has been registered, grounded on the reference click-converter
// tables. street_sport sits between gt and street (tighter than street,
// looser than gt) since the source table only carried six of the seven
// categories; see DESIGN.md for that Open Question resolution.
var DefaultRanges = map[model.CategoryTag]map[string]Range{
	model.CategoryGT: {
		"spring_front":        {80000, 200000, 15, "N/m"},
		"spring_rear":         {80000, 200000, 15, "N/m"},
		"damper_bump":         {1500, 6000, 15, "N/m/s"},
		"damper_rebound":      {3000, 12000, 15, "N/m/s"},
		"damper_fast_bump":    {1000, 4000, 15, "N/m/s"},
		"damper_fast_rebound": {2000, 8000, 15, "N/m/s"},
		"arb":                 {0, 10, 10, "clicks"},
		"wing":                {0, 10, 10, "clicks"},
	},
	model.CategoryFormula: {
		"spring_front":        {120000, 300000, 20, "N/m"},
		"spring_rear":         {120000, 300000, 20, "N/m"},
		"damper_bump":         {2000, 8000, 20, "N/m/s"},
		"damper_rebound":      {4000, 16000, 20, "N/m/s"},
		"damper_fast_bump":    {1500, 6000, 20, "N/m/s"},
		"damper_fast_rebound": {3000, 12000, 20, "N/m/s"},
		"arb":                 {0, 15, 15, "clicks"},
		"wing":                {0, 20, 20, "clicks"},
	},
	model.CategoryPrototype: {
		"spring_front":        {150000, 350000, 20, "N/m"},
		"spring_rear":         {150000, 350000, 20, "N/m"},
		"damper_bump":         {2500, 10000, 20, "N/m/s"},
		"damper_rebound":      {5000, 20000, 20, "N/m/s"},
		"damper_fast_bump":    {2000, 8000, 20, "N/m/s"},
		"damper_fast_rebound": {4000, 16000, 20, "N/m/s"},
		"arb":                 {0, 15, 15, "clicks"},
		"wing":                {0, 25, 25, "clicks"},
	},
	model.CategoryStreetSport: {
		"spring_front":   {45000, 120000, 10, "N/m"},
		"spring_rear":    {40000, 110000, 10, "N/m"},
		"damper_bump":    {1200, 4500, 10, "N/m/s"},
		"damper_rebound": {2500, 9000, 10, "N/m/s"},
		"arb":            {0, 8, 8, "clicks"},
		"wing":            {0, 7, 7, "clicks"},
	},
	model.CategoryStreet: {
		"spring_front":   {25000, 80000, 0, "N/m"},
		"spring_rear":    {25000, 80000, 0, "N/m"},
		"damper_bump":    {1000, 4000, 0, "N/m/s"},
		"damper_rebound": {2000, 8000, 0, "N/m/s"},
		"arb":            {0, 50000, 0, "N/mm"},
		"wing":           {0, 5, 5, "clicks"},
	},
	model.CategoryDrift: {
		"spring_front":   {40000, 120000, 10, "N/m"},
		"spring_rear":    {30000, 100000, 10, "N/m"},
		"damper_bump":    {1200, 5000, 10, "N/m/s"},
		"damper_rebound": {2500, 10000, 10, "N/m/s"},
		"arb":            {0, 8, 8, "clicks"},
		"wing":           {0, 5, 5, "clicks"},
	},
	model.CategoryVintage: {
		"spring_front":   {20000, 60000, 0, "N/m"},
		"spring_rear":    {20000, 60000, 0, "N/m"},
		"damper_bump":    {800, 3000, 0, "N/m/s"},
		"damper_rebound": {1500, 6000, 0, "N/m/s"},
		"arb":            {0, 5, 5, "clicks"},
		"wing":           {0, 0, 0, "N/A"},
	},
}
