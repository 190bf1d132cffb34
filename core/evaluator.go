package core

// Evaluator samples the function being plotted at a single point. V is
// typically an enum-like comparable type (a region id, a sign, a small
// struct of comparable fields) rather than a continuous value: the whole
// engine is built around detecting where V changes, not interpolating it.
type Evaluator[V comparable] func(x, y float64) V
