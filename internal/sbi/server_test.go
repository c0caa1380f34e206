package sbi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/free5gc/e2ap/internal/metrics"
	"github.com/free5gc/e2ap/pkg/factory"
	"github.com/free5gc/e2ap/pkg/procedure"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := factory.ReadConfig("../../config/e2apcfg.yaml")
	require.NoError(t, err)
	procedures, err := procedure.New(cfg.GetLimits())
	require.NoError(t, err)
	return NewServer(cfg, procedures)
}

func serve(s *Server, method, path string, body []byte, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rr := serve(s, http.MethodGet, "/e2ap/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	require.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	rr = serve(s, http.MethodGet, "/e2ap/v1/health", nil, http.Header{RequestIDHeader: {"req-1"}})
	require.Equal(t, "req-1", rr.Header().Get(RequestIDHeader))
}

func TestEncodeTemplatesAndDecode(t *testing.T) {
	s := newTestServer(t)

	testCases := []struct {
		path    string
		message string
	}{
		{path: "/e2ap/v1/encode/subscription-request", message: "RICsubscriptionRequest"},
		{path: "/e2ap/v1/encode/control-request", message: "RICcontrolRequest"},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			rr := serve(s, http.MethodPost, tc.path, nil, nil)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var pdu PDU
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pdu))
			require.NotEmpty(t, pdu.PDU)

			body, err := json.Marshal(pdu)
			require.NoError(t, err)
			rr = serve(s, http.MethodPost, "/e2ap/v1/decode", body, nil)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var msg struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
			require.Equal(t, tc.message, msg.Message)
		})
	}
}

func TestEncodeSubscriptionRequestBody(t *testing.T) {
	s := newTestServer(t)

	body := []byte(`{"requestID":{"requestorID":1,"instanceID":2},"ranFunctionID":3,` +
		`"eventTriggerDefinition":"AQI=","actions":[{"actionID":1,"actionType":0}]}`)
	rr := serve(s, http.MethodPost, "/e2ap/v1/encode/subscription-request", body, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	body = []byte(`{"requestID":{"requestorID":1,"instanceID":2},"ranFunctionID":5000}`)
	rr = serve(s, http.MethodPost, "/e2ap/v1/encode/subscription-request", body, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var pd ProblemDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pd))
	require.Equal(t, http.StatusBadRequest, pd.Status)
	require.NotEmpty(t, pd.RequestID)
}

func TestEncodeSubscriptionDeleteRequest(t *testing.T) {
	s := newTestServer(t)

	body := []byte(`{"requestID":{"requestorID":1,"instanceID":2},"ranFunctionID":3}`)
	rr := serve(s, http.MethodPost, "/e2ap/v1/encode/subscription-delete-request", body, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var pdu PDU
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pdu))
	b, err := json.Marshal(pdu)
	require.NoError(t, err)

	rr = serve(s, http.MethodPost, "/e2ap/v1/decode", b, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"message":"RICsubscriptionDeleteRequest"`)
}

func TestDecodeRejects(t *testing.T) {
	s := newTestServer(t)

	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{name: "not hex", body: `{"pdu":"zz"}`, status: http.StatusBadRequest},
		{name: "missing pdu", body: `{}`, status: http.StatusBadRequest},
		{name: "odd length", body: `{"pdu":"abc"}`, status: http.StatusBadRequest},
		{name: "malformed PDU", body: `{"pdu":"00"}`, status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(s, http.MethodPost, "/e2ap/v1/decode", []byte(tc.body), nil)
			require.Equal(t, tc.status, rr.Code, rr.Body.String())
		})
	}
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)

	encodeBefore := testutil.ToFloat64(metrics.EncodeCount("RICsubscriptionRequest", metrics.ResultSuccess))
	rr := serve(s, http.MethodPost, "/e2ap/v1/encode/subscription-request", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, encodeBefore+1,
		testutil.ToFloat64(metrics.EncodeCount("RICsubscriptionRequest", metrics.ResultSuccess)))

	var pdu PDU
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pdu))
	body, err := json.Marshal(pdu)
	require.NoError(t, err)
	decodeBefore := testutil.ToFloat64(metrics.DecodeCount("RICsubscriptionRequest", metrics.ResultSuccess))
	rr = serve(s, http.MethodPost, "/e2ap/v1/decode", body, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, decodeBefore+1,
		testutil.ToFloat64(metrics.DecodeCount("RICsubscriptionRequest", metrics.ResultSuccess)))

	errorBefore := testutil.ToFloat64(metrics.DecodeCount("unknown", metrics.ResultError))
	rr = serve(s, http.MethodPost, "/e2ap/v1/decode", []byte(`{"pdu":"00"}`), nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, errorBefore+1, testutil.ToFloat64(metrics.DecodeCount("unknown", metrics.ResultError)))

	rr = serve(s, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "e2ap_encode_total")
}
