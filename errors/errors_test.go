package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotRepository, "not a git repository")

	require.Equal(t, CodeNotRepository, err.Code())
	require.Equal(t, "not a git repository", err.Message())
	require.Equal(t, SeverityError, err.Severity())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_A_REPOSITORY] not a git repository", err.Error())
}

func TestNew_DefaultSeverity(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want Severity
	}{
		{CodeLoadInProgress, SeverityWarning},
		{CodeCanceled, SeverityWarning},
		{CodeQueryFailed, SeverityError},
		{CodeInvalidConfig, SeverityError},
		{ErrorCode("SOMETHING_NEW"), SeverityError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, New(tt.code, "msg").Severity())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeParseFailed, "record %d: missing %s", 3, "header")
	require.Equal(t, "record 3: missing header", err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("exit status 128")
	err := Wrap(cause, CodeQueryFailed, "git log failed")

	require.Equal(t, CodeQueryFailed, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.True(t, stderrors.Is(err, cause))
	require.Equal(t, "[QUERY_FAILED] git log failed: exit status 128", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeQueryFailed, "x"))
	require.Nil(t, Wrapf(nil, CodeQueryFailed, "x %d", 1))
}

func TestWrap_PreservesSeverity(t *testing.T) {
	inner := New(CodeCanceled, "cancelled")
	outer := Wrap(inner, CodeInternal, "load aborted")

	require.Equal(t, CodeInternal, outer.Code())
	require.Equal(t, SeverityWarning, outer.Severity())
}

func TestWithContext(t *testing.T) {
	err := New(CodeQueryFailed, "distance query failed")
	err = WithContext(err, "branch", "feature")
	err = WithContext(err, "base", "origin/master")

	require.Equal(t, map[string]interface{}{
		"branch": "feature",
		"base":   "origin/master",
	}, err.Context())
	require.Equal(t, CodeQueryFailed, err.Code())
}

func TestWithContext_PlainError(t *testing.T) {
	err := WithContext(stderrors.New("boom"), "k", "v")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "boom", err.Message())
	require.Equal(t, "v", err.Context()["k"])
}

func TestContext_IsCopy(t *testing.T) {
	err := WithContext(New(CodeInternal, "x"), "k", "v")
	ctx := err.Context()
	ctx["k"] = "changed"

	require.Equal(t, "v", err.Context()["k"])
}

func TestWithSeverity(t *testing.T) {
	err := WithSeverity(New(CodeQueryFailed, "x"), SeverityWarning)
	require.Equal(t, SeverityWarning, err.Severity())
	require.Nil(t, WithSeverity(nil, SeverityWarning))
}

func TestHelpers(t *testing.T) {
	sentinel := New(CodeNotRepository, "not a repo")
	wrapped := Wrap(sentinel, CodeInternal, "load failed")

	require.True(t, Is(wrapped, sentinel))
	require.Equal(t, CodeInternal, GetCode(wrapped))
	require.True(t, HasCode(wrapped, CodeInternal))
	require.False(t, HasCode(nil, CodeInternal))
	require.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	require.Equal(t, CodeUnknown, GetCode(nil))
	require.Equal(t, SeverityError, GetSeverity(stderrors.New("plain")))

	var coded Error
	require.True(t, As(wrapped, &coded))
	require.Equal(t, "load failed", coded.Message())
}

func TestToJSON(t *testing.T) {
	require.Nil(t, ToJSON(nil))

	err := WithContext(New(CodeLoadInProgress, "busy"), "work_dir", "/repo")
	resp := ToJSON(err)

	require.Equal(t, "LOAD_IN_PROGRESS", resp.Code)
	require.Equal(t, "busy", resp.Message)
	require.Equal(t, "WARNING", resp.Severity)
	require.Equal(t, "/repo", resp.Context["work_dir"])

	plain := ToJSON(stderrors.New("plain"))
	require.Equal(t, "UNKNOWN", plain.Code)
	require.Equal(t, "plain", plain.Message)
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New(CodeParseFailed, "bad header"))
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"PARSE_FAILED","message":"bad header","severity":"ERROR"}`, string(data))
}
