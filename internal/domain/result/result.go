// Package result provides the discriminated success/failure value returned by every use case.
// Callers receive a Result instead of an error and never need to recover from a failed operation.
package result

import (
	"context"
	"encoding/json"

	"portfolio/internal/errors"
)

// Empty is the payload of results whose action yields no meaningful value.
type Empty = struct{}

// Mapper converts a raw failure into a closed error code.
// The input is either the error returned by an action or the value recovered from a panic.
type Mapper[E ~string] func(raw any) E

// Result is either a success carrying data of type T or a failure carrying an error code of type E.
type Result[T any, E ~string] struct {
	success bool
	hasData bool
	data    T
	code    E
}

// Ok returns a successful result holding data.
func Ok[T any, E ~string](data T) Result[T, E] {
	return Result[T, E]{success: true, hasData: true, data: data}
}

// OkEmpty returns a successful result without data.
func OkEmpty[T any, E ~string]() Result[T, E] {
	return Result[T, E]{success: true}
}

// Fail returns a failed result holding the error code.
func Fail[T any, E ~string](code E) Result[T, E] {
	return Result[T, E]{code: code}
}

// IsSuccess reports whether the result is the success variant.
func (r Result[T, E]) IsSuccess() bool {
	return r.success
}

// Data returns the success payload. ok is false for failures and for empty successes.
func (r Result[T, E]) Data() (data T, ok bool) {
	return r.data, r.success && r.hasData
}

// Code returns the failure code. ok is false for successes.
func (r Result[T, E]) Code() (code E, ok bool) {
	if r.success {
		return code, false
	}

	return r.code, true
}

type successJSON[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data,omitempty"`
}

type failureJSON[E ~string] struct {
	Success bool `json:"success"`
	Error   E    `json:"error"`
}

// MarshalJSON renders {"success":true,"data":...} or {"success":false,"error":"..."}.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if !r.success {
		return json.Marshal(failureJSON[E]{Success: false, Error: r.code})
	}

	out := successJSON[T]{Success: true}
	if r.hasData {
		out.Data = &r.data
	}

	return json.Marshal(out)
}

// Execute runs action and converts its outcome into a Result.
// A returned error or a panic is passed through mapper; Execute itself never panics.
func Execute[T any, E ~string](ctx context.Context, action func(ctx context.Context) (T, error), mapper Mapper[E]) (res Result[T, E]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fail[T](mapper(errors.Recovered(v)))
		}
	}()

	data, err := action(ctx)
	if err != nil {
		return Fail[T](mapper(err))
	}

	return Ok[T, E](data)
}

// ExecuteVoid is Execute for actions that only report success or failure.
func ExecuteVoid[E ~string](ctx context.Context, action func(ctx context.Context) error, mapper Mapper[E]) (res Result[Empty, E]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fail[Empty](mapper(errors.Recovered(v)))
		}
	}()

	if err := action(ctx); err != nil {
		return Fail[Empty](mapper(err))
	}

	return OkEmpty[Empty, E]()
}
