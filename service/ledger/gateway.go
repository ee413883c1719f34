package ledger

import (
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RegisterGateway serves the read-only campaign view on mux
func RegisterGateway(mux *runtime.ServeMux, service IService) error {
	return mux.HandlePath(http.MethodGet, "/v1/campaigns/{id}",
		func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			ctx := r.Context()
			_, outbound := runtime.MarshalerForRequest(mux, r)

			id, err := parseCampaignID(pathParams["id"])
			if err != nil {
				runtime.HTTPError(ctx, mux, outbound, w, r, err)
				return
			}

			campaign, err := service.GetCampaign(ctx, id)
			if err != nil {
				runtime.HTTPError(ctx, mux, outbound, w, r, toStatusError(ctx, err))
				return
			}

			resp := toRPCCampaign(campaign)
			data, err := outbound.Marshal(resp)
			if err != nil {
				runtime.HTTPError(ctx, mux, outbound, w, r, err)
				return
			}

			w.Header().Set("Content-Type", outbound.ContentType(resp))
			_, _ = w.Write(data)
		},
	)
}

func parseCampaignID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "invalid campaign id: %q", s)
	}
	return id, nil
}
