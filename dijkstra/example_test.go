// Package dijkstra_test provides examples demonstrating how to use the solver.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/matrix"
)

// ExampleSolver demonstrates the basic compute-then-get-path flow.
func ExampleSolver() {
	// 1) Edges 0→1 (2), 1→2 (1), 0→2 (5); zero means "no edge".
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2, 5},
		{0, 0, 1},
		{0, 0, 0},
	})

	// 2) Build the solver over 3 vertices.
	s, err := dijkstra.New(m, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Cost first, then the path (target first).
	cost, _ := s.ComputeShortestPath(0, 2)
	path, _ := s.GetPath(0, 2)
	fmt.Printf("cost=%g path=%v\n", cost, path)

	// 4) Reverse for source-to-target order.
	slices.Reverse(path)
	fmt.Println("route:", path)
	// Output:
	// cost=3 path=[2 1 0]
	// route: [0 1 2]
}

// ExampleSolver_GetPath shows the error returned before any computation.
func ExampleSolver_GetPath() {
	m, _ := matrix.NewDenseFromRows([][]float64{{0}})
	s, _ := dijkstra.New(m, 1)

	_, err := s.GetPath(0, 0)
	fmt.Println(errors.Is(err, dijkstra.ErrNotComputed), s.HasErrorHappened())
	// Output: true true
}

// ExampleSolver_Solve keeps two computations side by side.
func ExampleSolver_Solve() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 4, 1, 0},
		{0, 0, 0, 1},
		{0, 2, 0, 6},
		{0, 0, 0, 0},
	})
	s, _ := dijkstra.New(m, 4, dijkstra.WithFullTree())

	fromZero, _ := s.Solve(0, 3)
	fromTwo, _ := s.Solve(2, 3)

	p0, _ := fromZero.Path(0, 3)
	p2, _ := fromTwo.Path(2, 3)
	fmt.Printf("0→3 cost=%g path=%v\n", fromZero.Cost(), p0)
	fmt.Printf("2→3 cost=%g path=%v\n", fromTwo.Cost(), p2)
	// Output:
	// 0→3 cost=4 path=[3 1 2 0]
	// 2→3 cost=3 path=[3 1 2]
}
