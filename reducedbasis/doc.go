// Package reducedbasis provides the parameter-space types shared by the
// reduced-basis training and evaluation components.
//
// The central type is Parameters, a value container describing one sampled
// point in parameter space. It holds two independent name-to-value mappings:
// the primary parameters consumed by the reduction algorithms, and "extra"
// parameters carried alongside for bookkeeping (sample indices, load factors,
// anything the surrounding pipeline wants to remember about a point without
// feeding it to the solver).
//
// Parameters is a plain single-threaded value type: no locking, no I/O, no
// hidden sharing. Instances are cheap to create and are passed by pointer
// into assembly and solve routines; use Clone when an independent copy is
// needed.
//
//	mu := reducedbasis.NewParameters()
//	mu.SetValue("conductivity", 1.5)
//	mu.SetValue("bc_scaling", 2.75)
//	mu.SetExtraValue("sample_index", 42)
//
//	v, err := mu.Value("conductivity")   // strict: fails on missing names
//	w := mu.ValueOrDefault("eps", 1e-8)  // total: falls back to the default
package reducedbasis
