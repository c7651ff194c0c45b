// Package subway models a subway network as lines built from directed
// sections and answers route queries across all of them.
//
// 🚇 What is in the box?
//
//	• Stations: small immutable values compared by ID, plus a shared registry
//	• Lines: an ordered chain of sections that stays contiguous under edits
//	• Network: every line's sections flattened into one directed graph
//	• Routes: minimum total distance (Dijkstra) or fewest stations (BFS)
//	• Loading: a validated YAML network document
//	• CLI: subwaypath, JSON output for path, stations and reachable queries
//
// Packages:
//
//	station/: Station value, sentinels and the concurrency-safe Registry
//	line/: Section, Sections chain (append/trim at the tail) and Line
//	network/: directed multigraph over line sections, deterministic iteration
//	dijkstra/: single-source shortest distances with target early-exit
//	bfs/: breadth-first walk with hooks, depth limit and cancellation
//	path/: Finder: FindPath, FindFewestStations, Reachable
//	loader/: YAML document to Registry + Lines, with field validation
//	internal/: config (env + .env), logging (slog), cli (cobra)
//	cmd/subwaypath: the command-line entry point
//
// Quick ASCII example:
//
//	Sinnonhyeon ─10→ Gangnam ─15→ Yangjae ─20→ Dogok ─25→ Seolleung
//	 (Shinbundang)               (Line 3)     (Bundang)
//
// FindPath(Sinnonhyeon, Seolleung) rides three lines for a distance of 70.
//
//	go install github.com/katalvlaran/subway/cmd/subwaypath@latest
package subway
