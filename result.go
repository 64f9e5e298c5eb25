package calc

// Result is the outcome of calculating one expression.
type Result struct {
	// OK is whether the calculation succeeded.
	OK bool
	// Value is the result of a successful calculation.
	Value float64
	// Kind classifies the error of a failed calculation. It is KindNone if OK.
	Kind ErrorKind
	// Err is the error of a failed calculation.
	Err error
	// Trace describes each stage of the calculation in order. On success it
	// has the original expression, the tokens, the postfix form, and a
	// completion line. On failure the lines of the stages that completed are
	// followed by an error line.
	Trace []string
}

// Trace line prefixes and the completion marker.
const (
	TraceExpression = "expression: "
	TraceTokens     = "tokens: "
	TracePostfix    = "postfix: "
	TraceError      = "error: "
	TraceDone       = "evaluation complete"
)

// Calculate evaluates an expression. It never panics and always returns a
// Result describing either the value or the first error.
func Calculate(src string) Result {
	r := Result{Trace: []string{TraceExpression + src}}
	tokens, err := Tokenize(src)
	if err != nil {
		return r.fail(err)
	}
	r.Trace = append(r.Trace, TraceTokens+FormatTokens(tokens))
	if err := Validate(tokens); err != nil {
		return r.fail(err)
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return r.fail(err)
	}
	r.Trace = append(r.Trace, TracePostfix+FormatPostfix(postfix))
	v, err := Evaluate(postfix)
	if err != nil {
		return r.fail(err)
	}
	r.OK = true
	r.Value = v
	r.Trace = append(r.Trace, TraceDone)
	return r
}

func (r Result) fail(err error) Result {
	r.Kind = Kind(err)
	r.Err = err
	r.Trace = append(r.Trace, TraceError+r.Kind.String()+" ("+err.Error()+")")
	return r
}
