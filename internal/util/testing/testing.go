package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Token          string
	Body           any
	ExpectedStatus int
}

type TestResponse struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *TestResponse {
	t.Helper()

	var bodyReader *bytes.Reader
	switch body := options.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	case []byte:
		bodyReader = bytes.NewReader(body)
	default:
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequest(options.Method, options.URL, bodyReader)
	require.NoError(t, err, "failed to build request")

	request.Header.Set("Content-Type", "application/json")
	if options.Token != "" {
		request.Header.Set("Authorization", "Bearer "+options.Token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if options.ExpectedStatus != 0 {
		require.Equal(
			t,
			options.ExpectedStatus,
			recorder.Code,
			"unexpected status for %s %s: %s", options.Method, options.URL, recorder.Body.String(),
		)
	}

	return &TestResponse{Code: recorder.Code, Body: recorder.Body.Bytes()}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, token string, expectedStatus int) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodGet,
		URL:            url,
		Token:          token,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPost,
		URL:            url,
		Token:          token,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPut,
		URL:            url,
		Token:          token,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakePatchRequest(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPatch,
		URL:            url,
		Token:          token,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url, token string, expectedStatus int) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodDelete,
		URL:            url,
		Token:          token,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	expectedStatus int,
	out any,
) {
	t.Helper()
	response := MakeGetRequest(t, router, url, token, expectedStatus)
	require.NoError(t, json.Unmarshal(response.Body, out), "failed to decode response: %s", response.Body)
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	response := MakePostRequest(t, router, url, token, body, expectedStatus)
	require.NoError(t, json.Unmarshal(response.Body, out), "failed to decode response: %s", response.Body)
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	response := MakePutRequest(t, router, url, token, body, expectedStatus)
	require.NoError(t, json.Unmarshal(response.Body, out), "failed to decode response: %s", response.Body)
}
