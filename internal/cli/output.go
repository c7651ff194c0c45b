// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/subway/path"
	"github.com/katalvlaran/subway/station"
)

type stationResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type pathResult struct {
	Stations []stationResult `json:"stations"`
	Distance int64           `json:"distance"`
}

type errorResult struct {
	Message string `json:"message"`
}

func toStationResults(in []station.Station) []stationResult {
	out := make([]stationResult, len(in))
	for i, s := range in {
		out[i] = stationResult{ID: s.ID, Name: s.Name}
	}
	return out
}

func toPathResult(r path.Result) pathResult {
	return pathResult{Stations: toStationResults(r.Stations), Distance: r.Distance}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
