package model

import "strings"

// touge/street/drift substring tables per spec §4.9 step 4. DetectTrackType
// checks drift first, then touge, then street; first match wins, otherwise
// the track is a circuit.
var tougeSubstrings = []string{"touge", "akina", "usui", "irohazaka", "downhill", "hillclimb"}
var streetSubstrings = []string{"street", "city", "urban", "highway", "shutoko", "wangan"}
var driftSubstrings = []string{"drift", "ebisu", "meihan"}

// DetectTrackType classifies a track's layout from its identifying
// strings. It is pure and deterministic, evaluated once per pipeline run
// and reused by both the physics baseline builder (C3) and the physics
// refiner (C4) so both stages agree on the same track type.
func DetectTrackType(track TrackDescriptor) TrackType {
	haystack := strings.ToLower(track.TrackID + " " + track.DisplayName + " " + track.Config + " " + track.TypeHint)

	if containsAny(haystack, driftSubstrings) {
		return TrackTypeDrift
	}
	if containsAny(haystack, tougeSubstrings) {
		return TrackTypeTouge
	}
	if containsAny(haystack, streetSubstrings) {
		return TrackTypeStreet
	}
	return TrackTypeCircuit
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
