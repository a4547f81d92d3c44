package result

import (
	"context"
	"encoding/json"
	"testing"

	"portfolio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCode string

const (
	codeBoom    testCode = "boom"
	codeGeneric testCode = "generic"
)

func testMapper(raw any) testCode {
	if err, ok := raw.(error); ok && err.Error() == "boom" {
		return codeBoom
	}

	return codeGeneric
}

func TestExecute_Success(t *testing.T) {
	res := Execute(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	}, testMapper)

	require.True(t, res.IsSuccess())
	data, ok := res.Data()
	assert.True(t, ok)
	assert.Equal(t, 42, data)

	_, failed := res.Code()
	assert.False(t, failed)
}

func TestExecute_FailureIsMapped(t *testing.T) {
	res := Execute(context.Background(), func(context.Context) (string, error) {
		return "ignored", errors.New("boom")
	}, testMapper)

	require.False(t, res.IsSuccess())
	code, ok := res.Code()
	assert.True(t, ok)
	assert.Equal(t, codeBoom, code)

	data, hasData := res.Data()
	assert.False(t, hasData)
	assert.Empty(t, data, "failure must not carry data")
}

func TestExecute_PanicIsRecovered(t *testing.T) {
	var res Result[int, testCode]
	assert.NotPanics(t, func() {
		res = Execute(context.Background(), func(context.Context) (int, error) {
			panic("unexpected")
		}, testMapper)
	})

	code, ok := res.Code()
	assert.True(t, ok)
	assert.Equal(t, codeGeneric, code)
}

func TestExecute_PanicWithErrorKeepsIdentity(t *testing.T) {
	res := Execute(context.Background(), func(context.Context) (int, error) {
		panic(errors.New("boom"))
	}, testMapper)

	code, _ := res.Code()
	assert.Equal(t, codeBoom, code)
}

func TestExecute_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	res := Execute(ctx, func(ctx context.Context) (string, error) {
		return ctx.Value(key{}).(string), nil
	}, testMapper)

	data, _ := res.Data()
	assert.Equal(t, "v", data)
}

func TestExecuteVoid(t *testing.T) {
	ok := ExecuteVoid(context.Background(), func(context.Context) error { return nil }, testMapper)
	assert.True(t, ok.IsSuccess())
	_, hasData := ok.Data()
	assert.False(t, hasData)

	failed := ExecuteVoid(context.Background(), func(context.Context) error { return errors.New("boom") }, testMapper)
	code, isFailure := failed.Code()
	assert.True(t, isFailure)
	assert.Equal(t, codeBoom, code)
}

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		res  any
		want string
	}{
		{name: "success with data", res: Ok[int, testCode](7), want: `{"success":true,"data":7}`},
		{name: "success with nil pointer data", res: Ok[*int, testCode](nil), want: `{"success":true,"data":null}`},
		{name: "empty success", res: OkEmpty[Empty, testCode](), want: `{"success":true}`},
		{name: "failure", res: Fail[int](codeBoom), want: `{"success":false,"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.res)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}
