package types

import "time"

// Result is the outcome of one timed summation.
type Result struct {
	// Strategy is the Summer name.
	Strategy string `json:"strategy"`

	// Size is the number of summed elements.
	Size int `json:"size"`

	// Sum is the computed total.
	Sum int64 `json:"sum"`

	// Elapsed is the wall-clock time spent inside Sum.
	Elapsed time.Duration `json:"elapsed"`
}

// ElapsedMillis returns Elapsed truncated to whole milliseconds.
func (r Result) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}
