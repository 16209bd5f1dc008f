// Package log defines standard attribute keys for reduced-basis operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in the module. Using these standard keys enables
// better log analysis, monitoring, and debugging of model-order-reduction
// workflows.
//
// The attributes are organized into categories:
//   - Component and Operation Context
//   - Parameter-Space Context
//   - Performance Metrics
//   - Error Context
//
// The keys follow a hierarchical naming convention (e.g., "rb.operation",
// "param.count") to enable structured log analysis and filtering.

package log

// Component and Operation Context
// These attributes identify the component and the RB operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "reducedbasis", "training", "evaluation"
	ComponentKey = "rb.component"

	// OperationKey specifies the reduced-basis operation being performed.
	// Standard values: "train", "greedy_sample", "rb_solve", "error_estimate"
	OperationKey = "rb.operation"

	// PhaseKey indicates the phase of the RB lifecycle.
	// Examples: "offline", "online", "validation"
	PhaseKey = "rb.phase"
)

// Parameter-Space Context
// These attributes describe the parameter point or set being processed.
const (
	// ParamCountKey indicates the number of primary parameters in a set.
	ParamCountKey = "param.count"

	// ExtraParamCountKey indicates the number of extra (auxiliary) parameters.
	ExtraParamCountKey = "param.extra_count"

	// ParamNameKey identifies a single parameter by name.
	// Examples: "conductivity", "bc_scaling", "mu_0"
	ParamNameKey = "param.name"

	// ParamValueKey records a single parameter value.
	ParamValueKey = "param.value"

	// PrecisionKey records the rendering precision used for diagnostic dumps.
	PrecisionKey = "param.precision"
)

// Performance Metrics
// These attributes capture timing and convergence information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// IterationKey records the current iteration of an iterative process,
	// e.g. the greedy iteration during basis enrichment.
	IterationKey = "rb.iteration"

	// ErrorBoundKey records the a posteriori error bound at a sampled point.
	ErrorBoundKey = "rb.error_bound"

	// BasisSizeKey records the current reduced-basis dimension.
	BasisSizeKey = "rb.basis_size"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "PARAMETER_NOT_FOUND", "INVALID_PRECISION"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ParameterNotFoundError", "ValueError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by ErrFmtHandler.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard RB operations
	OperationTrain         = "train"
	OperationGreedySample  = "greedy_sample"
	OperationRBSolve       = "rb_solve"
	OperationErrorEstimate = "error_estimate"
	OperationPrint         = "print"

	// Standard RB phases
	PhaseOffline    = "offline"
	PhaseOnline     = "online"
	PhaseValidation = "validation"

	// Standard error codes
	ErrorParameterNotFound = "PARAMETER_NOT_FOUND"
	ErrorInvalidValue      = "INVALID_VALUE"
)
