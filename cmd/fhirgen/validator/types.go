package validator

// Result is the outcome of validating a single record: valid when no
// reasons accumulated, invalid otherwise. Callers must branch on
// Valid() explicitly; there is no fallback value.
type Result struct {
	Reasons []string
}

// Valid reports whether the record passed every check.
func (r Result) Valid() bool {
	return len(r.Reasons) == 0
}

func invalid(reasons ...string) Result {
	return Result{Reasons: reasons}
}
