package reducedbasis

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ttruster/libmesh/pkg/errors"
)

// DefaultPrecision is the number of digits after the decimal point used by
// String when rendering parameter values in scientific notation.
const DefaultPrecision = 6

// Parameters is a set of named scalar parameters describing one point in
// parameter space.
//
// Two independent namespaces are kept: the primary parameters, which the
// training and reduction algorithms consume, and the extra parameters, which
// are auxiliary values carried alongside. The same name may appear in both
// namespaces; the entries are unrelated.
//
// Values are stored verbatim. Any float64 is accepted, including NaN and
// infinities; the container performs no range validation.
//
// The zero value is an empty, ready-to-use container. Parameters is not safe
// for concurrent use; callers sharing an instance across goroutines must
// serialize access themselves.
type Parameters struct {
	params      map[string]float64
	extraParams map[string]float64
}

// NewParameters creates an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{}
}

// NewParametersFromMap creates a parameter set whose primary namespace is a
// copy of parameterMap. The extra namespace starts empty.
func NewParametersFromMap(parameterMap map[string]float64) *Parameters {
	p := &Parameters{}
	for name, value := range parameterMap {
		p.SetValue(name, value)
	}
	return p
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (p *Parameters) Clone() *Parameters {
	c := &Parameters{}
	for name, value := range p.params {
		c.SetValue(name, value)
	}
	for name, value := range p.extraParams {
		c.SetExtraValue(name, value)
	}
	return c
}

// Clear empties both the primary and the extra namespace.
func (p *Parameters) Clear() {
	p.params = nil
	p.extraParams = nil
}

// HasValue reports whether a primary parameter named name is present.
func (p *Parameters) HasValue(name string) bool {
	_, ok := p.params[name]
	return ok
}

// HasExtraValue reports whether an extra parameter named name is present.
func (p *Parameters) HasExtraValue(name string) bool {
	_, ok := p.extraParams[name]
	return ok
}

// Value returns the primary parameter named name.
//
// A missing name is a caller error: the returned error is a
// *errors.ParameterNotFoundError carrying a stack trace. Check HasValue
// first, or use ValueOrDefault, when absence is expected.
func (p *Parameters) Value(name string) (float64, error) {
	value, ok := p.params[name]
	if !ok {
		return 0, errors.NewParameterNotFoundError("primary", name)
	}
	return value, nil
}

// ValueOrDefault returns the primary parameter named name, or defaultValue
// when no such parameter exists.
func (p *Parameters) ValueOrDefault(name string, defaultValue float64) float64 {
	value, ok := p.params[name]
	if !ok {
		return defaultValue
	}
	return value
}

// SetValue inserts or overwrites the primary parameter named name.
func (p *Parameters) SetValue(name string, value float64) {
	if p.params == nil {
		p.params = make(map[string]float64)
	}
	p.params[name] = value
}

// ExtraValue returns the extra parameter named name.
// The error contract matches Value.
func (p *Parameters) ExtraValue(name string) (float64, error) {
	value, ok := p.extraParams[name]
	if !ok {
		return 0, errors.NewParameterNotFoundError("extra", name)
	}
	return value, nil
}

// ExtraValueOrDefault returns the extra parameter named name, or defaultValue
// when no such parameter exists.
func (p *Parameters) ExtraValueOrDefault(name string, defaultValue float64) float64 {
	value, ok := p.extraParams[name]
	if !ok {
		return defaultValue
	}
	return value
}

// SetExtraValue inserts or overwrites the extra parameter named name.
func (p *Parameters) SetExtraValue(name string, value float64) {
	if p.extraParams == nil {
		p.extraParams = make(map[string]float64)
	}
	p.extraParams[name] = value
}

// NParameters returns the number of primary parameters.
// Extra parameters do not count.
func (p *Parameters) NParameters() int {
	return len(p.params)
}

// ParameterNames returns the primary parameter names in ascending order.
//
// Deprecated: iterate with Range instead of copying the key set. Each call
// emits a DeprecationWarning through the errors package warning handler.
func (p *Parameters) ParameterNames() []string {
	errors.Warn(errors.NewDeprecationWarning("Parameters.ParameterNames", "Parameters.Range"))
	return sortedKeys(p.params)
}

// ExtraParameterNames returns the extra parameter names in ascending order.
//
// Deprecated: iterate with RangeExtra instead of copying the key set. Each
// call emits a DeprecationWarning through the errors package warning handler.
func (p *Parameters) ExtraParameterNames() []string {
	errors.Warn(errors.NewDeprecationWarning("Parameters.ExtraParameterNames", "Parameters.RangeExtra"))
	return sortedKeys(p.extraParams)
}

// EraseParameter removes the primary parameter named name.
// Removing an absent name is a no-op.
func (p *Parameters) EraseParameter(name string) {
	delete(p.params, name)
}

// EraseExtraParameter removes the extra parameter named name.
// Removing an absent name is a no-op.
func (p *Parameters) EraseExtraParameter(name string) {
	delete(p.extraParams, name)
}

// Range calls fn for every primary parameter in ascending name order.
// Iteration stops early when fn returns false.
//
// Each call starts a fresh traversal. Mutating the primary namespace from
// inside fn is unsupported.
func (p *Parameters) Range(fn func(name string, value float64) bool) {
	for _, name := range sortedKeys(p.params) {
		if !fn(name, p.params[name]) {
			return
		}
	}
}

// RangeExtra calls fn for every extra parameter in ascending name order.
// The iteration contract matches Range.
func (p *Parameters) RangeExtra(fn func(name string, value float64) bool) {
	for _, name := range sortedKeys(p.extraParams) {
		if !fn(name, p.extraParams[name]) {
			return
		}
	}
}

// Equal reports whether p and rhs hold exactly the same primary parameters:
// the same names, each mapped to the same value under float64 equality.
// Extra parameters are ignored.
//
// Values are compared with ==, so a NaN entry never compares equal, not even
// to itself. Two sets that both store NaN under the same name are unequal.
func (p *Parameters) Equal(rhs *Parameters) bool {
	if len(p.params) != len(rhs.params) {
		return false
	}
	for name, value := range p.params {
		rhsValue, ok := rhs.params[name]
		if !ok || rhsValue != value {
			return false
		}
	}
	return true
}

// Vector returns the primary parameter values in ascending name order as a
// dense gonum vector, the shape the assembly and solve routines consume.
// An empty set yields a zero-length vector.
func (p *Parameters) Vector() *mat.VecDense {
	if len(p.params) == 0 {
		return &mat.VecDense{}
	}
	names := sortedKeys(p.params)
	values := make([]float64, len(names))
	for i, name := range names {
		values[i] = p.params[name]
	}
	return mat.NewVecDense(len(values), values)
}

// StringPrecision renders the container as text for diagnostics and log
// comparison: one "name: value" line per primary parameter in ascending name
// order, values in scientific notation with precision digits after the
// decimal point. When extra parameters are present they follow under an
// "extra parameters:" header in the same format. A negative precision falls
// back to DefaultPrecision.
//
// The format is for human consumption; no round-trip parsing is supported.
func (p *Parameters) StringPrecision(precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	var b strings.Builder
	for _, name := range sortedKeys(p.params) {
		fmt.Fprintf(&b, "%s: %.*e\n", name, precision, p.params[name])
	}
	if len(p.extraParams) > 0 {
		b.WriteString("extra parameters:\n")
		for _, name := range sortedKeys(p.extraParams) {
			fmt.Fprintf(&b, "%s: %.*e\n", name, precision, p.extraParams[name])
		}
	}
	return b.String()
}

// String implements fmt.Stringer with DefaultPrecision.
func (p *Parameters) String() string {
	return p.StringPrecision(DefaultPrecision)
}

// Print writes the String rendering to standard output.
func (p *Parameters) Print() {
	fmt.Print(p.String())
}

func sortedKeys(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
