package ledger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/QuangTung97/crowdfund-ledger/ledgerpb"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
)

func newGatewayMux(t *testing.T, st *serviceTest) *runtime.ServeMux {
	mux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{}),
	)
	require.NoError(t, RegisterGateway(mux, st.svc))
	return mux
}

func doGet(mux http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	mux.ServeHTTP(w, r)
	return w
}

func TestGateway_Get_Campaign(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 500)
	mux := newGatewayMux(t, st)

	w := doGet(mux, "/v1/campaigns/0")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var c ledgerpb.Campaign
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, id, c.GetId())
	assert.Equal(t, "500", c.GetGoal())
	assert.Equal(t, "0", c.GetPledged())
	assert.Equal(t, string(tokenAddress), c.GetToken())
	assert.True(t, startTime.Equal(c.GetStartTime().AsTime()))
	assert.Contains(t, w.Body.String(), `"startTime"`)
}

func TestGateway_Errors(t *testing.T) {
	st := newServiceTest()
	mux := newGatewayMux(t, st)

	w := doGet(mux, "/v1/campaigns/5")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doGet(mux, "/v1/campaigns/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
