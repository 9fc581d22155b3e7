// Package lvpath computes single-source-to-target shortest paths on small,
// dense, directed graphs with non-negative edge weights.
//
// The module is organized under these packages:
//
//	matrix/              — dense float64 weight storage, edge decoding, validators
//	dijkstra/            — the adjacency-matrix Dijkstra solver and its Result type
//	internal/graphfile/  — YAML graph files (labels + weight rows)
//	cmd/lvpath/          — command line front end
//
// Quick example, edges 0→1 (2), 1→2 (1), 0→2 (5):
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0, 2, 5}, {0, 0, 1}, {0, 0, 0}})
//	s, _ := dijkstra.New(m, 3)
//	cost, _ := s.ComputeShortestPath(0, 2) // 3
//	path, _ := s.GetPath(0, 2)             // [2 1 0], target first
//
//	go get github.com/katalvlaran/lvpath
package lvpath
