// Package libmesh provides building blocks for reduced-basis (RB)
// model-order-reduction workflows in Go.
//
// The reduced-basis method approximates the solution of a parametrized
// model with a low-dimensional surrogate trained from full-order solves at
// sampled parameter points. The packages in this module supply the shared
// plumbing those workflows need; the numerical engines (training, greedy
// sampling, online evaluation) live in their own components and consume
// these types.
//
// # Quick Start
//
// Describing a point in parameter space and handing it to a solver:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/ttruster/libmesh/reducedbasis"
//	)
//
//	func main() {
//	    mu := reducedbasis.NewParameters()
//	    mu.SetValue("conductivity", 1.5)
//	    mu.SetValue("bc_scaling", 2.75)
//	    mu.SetExtraValue("sample_index", 42)
//
//	    if v, err := mu.Value("conductivity"); err == nil {
//	        fmt.Println("conductivity:", v)
//	    }
//	    fmt.Print(mu)
//	}
//
// # Packages
//
//   - reducedbasis: the Parameters container describing a sampled point in
//     parameter space (primary training parameters plus auxiliary "extra"
//     parameters)
//   - pkg/errors: structured error types and the deprecation-warning hooks
//     shared across the module
//   - pkg/log: slog-based structured logging with stack-trace extraction
//
// # License
//
// Released under the MIT License.
package libmesh
