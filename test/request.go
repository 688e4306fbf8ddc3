package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// APIResponse is the generic response body used to check errors.
type APIResponse struct {
	Error string
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, handler http.Handler, method, reqURL string, body any) httptest.ResponseRecorder {
	byteBuffer := new(bytes.Buffer)
	if body != nil {
		if s, ok := body.(string); ok {
			byteBuffer.WriteString(s)
		} else {
			err := json.NewEncoder(byteBuffer).Encode(body)
			require.Nil(t, err, "Request body could not be encoded")
		}
	}

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, reqURL, byteBuffer)
	require.Nil(t, err, "Request could not be created")
	req.Header.Set("Content-Type", "application/json")

	handler.ServeHTTP(recorder, req)
	return *recorder
}

// DecodeResponse decodes the response body into the target.
func DecodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(recorder.Body).Decode(target)
	require.Nil(t, err, "Response could not be decoded: %s", recorder.Body.String())
}
