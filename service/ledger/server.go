package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/ledgerpb"
	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/pkg/grpclib"
	"github.com/QuangTung97/crowdfund-ledger/pkg/otellib"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ErrorDomain is the ErrorInfo domain of ledger status errors
const ErrorDomain = "crowdfund.v1"

// Server exposes IService over gRPC
type Server struct {
	ledgerpb.UnimplementedLedgerServiceServer
	service IService
}

var _ ledgerpb.LedgerServiceServer = &Server{}

// NewServer ...
func NewServer(service IService) *Server {
	return &Server{
		service: service,
	}
}

func toStatusError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	code := codes.FailedPrecondition
	switch {
	case errors.Is(err, ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, ErrNotCreator):
		code = codes.PermissionDenied
	case errors.Is(err, ErrInvalidWindow), errors.Is(err, ErrInvalidAmount), errors.Is(err, model.ErrInvalidAmount):
		code = codes.InvalidArgument
	case errors.Is(err, ErrTransferFailed):
		code = codes.Aborted
	case ErrorKind(err) == errorKindInternal:
		otellib.WrapError(ctx, err)
		return status.Error(codes.Internal, "internal error")
	}

	st := status.New(code, err.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: ErrorKind(err),
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

func callerFromContext(ctx context.Context) (model.Address, error) {
	caller, err := grpclib.CallerFromContext(ctx)
	if err != nil {
		return "", err
	}
	return model.Address(caller), nil
}

func parseAmount(s string) (model.Amount, error) {
	amount, err := model.AmountFromString(s)
	if err != nil {
		return model.Amount{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return amount, nil
}

func toRPCCampaign(c model.Campaign) *ledgerpb.Campaign {
	return &ledgerpb.Campaign{
		Id:        c.ID,
		Creator:   string(c.Creator),
		Token:     string(c.Token),
		Goal:      c.Goal.String(),
		Pledged:   c.Pledged.String(),
		StartTime: timestamppb.New(c.StartTime),
		EndTime:   timestamppb.New(c.EndTime),
		Claimed:   c.Claimed,
		Cancelled: c.Cancelled,
	}
}

func parseTimestamp(name string, ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "missing %s", name)
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", name, err)
	}
	return ts.AsTime(), nil
}

// Launch ...
func (s *Server) Launch(ctx context.Context, req *ledgerpb.LaunchRequest) (*ledgerpb.LaunchResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	goal, err := parseAmount(req.GetGoal())
	if err != nil {
		return nil, err
	}
	startTime, err := parseTimestamp("start_time", req.GetStartTime())
	if err != nil {
		return nil, err
	}
	endTime, err := parseTimestamp("end_time", req.GetEndTime())
	if err != nil {
		return nil, err
	}

	id, err := s.service.Launch(ctx, caller, LaunchInput{
		Goal:      goal,
		StartTime: startTime,
		EndTime:   endTime,
		Token:     model.Address(req.GetToken()),
	})
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.LaunchResponse{CampaignId: id}, nil
}

// Cancel ...
func (s *Server) Cancel(ctx context.Context, req *ledgerpb.CancelRequest) (*ledgerpb.CancelResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.service.Cancel(ctx, caller, req.GetCampaignId()); err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.CancelResponse{}, nil
}

// Pledge ...
func (s *Server) Pledge(ctx context.Context, req *ledgerpb.PledgeRequest) (*ledgerpb.PledgeResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.GetAmount())
	if err != nil {
		return nil, err
	}
	if err := s.service.Pledge(ctx, caller, req.GetCampaignId(), amount); err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.PledgeResponse{}, nil
}

// Unpledge ...
func (s *Server) Unpledge(ctx context.Context, req *ledgerpb.UnpledgeRequest) (*ledgerpb.UnpledgeResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.GetAmount())
	if err != nil {
		return nil, err
	}
	if err := s.service.Unpledge(ctx, caller, req.GetCampaignId(), amount); err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.UnpledgeResponse{}, nil
}

// Claim ...
func (s *Server) Claim(ctx context.Context, req *ledgerpb.ClaimRequest) (*ledgerpb.ClaimResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.service.Claim(ctx, caller, req.GetCampaignId()); err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.ClaimResponse{}, nil
}

// Refund ...
func (s *Server) Refund(ctx context.Context, req *ledgerpb.RefundRequest) (*ledgerpb.RefundResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.service.Refund(ctx, caller, req.GetCampaignId()); err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.RefundResponse{}, nil
}

// GetCampaign does not require a caller
func (s *Server) GetCampaign(
	ctx context.Context, req *ledgerpb.GetCampaignRequest,
) (*ledgerpb.GetCampaignResponse, error) {
	campaign, err := s.service.GetCampaign(ctx, req.GetCampaignId())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.GetCampaignResponse{
		Campaign: toRPCCampaign(campaign),
	}, nil
}

// GetPledge ...
func (s *Server) GetPledge(
	ctx context.Context, req *ledgerpb.GetPledgeRequest,
) (*ledgerpb.GetPledgeResponse, error) {
	pledge, err := s.service.GetPledge(ctx, req.GetCampaignId(), model.Address(req.GetPledger()))
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &ledgerpb.GetPledgeResponse{
		Pledge: &ledgerpb.Pledge{
			CampaignId: pledge.CampaignID,
			Pledger:    string(pledge.Pledger),
			Amount:     pledge.Amount.String(),
		},
	}, nil
}

// ListEvents ...
func (s *Server) ListEvents(
	ctx context.Context, req *ledgerpb.ListEventsRequest,
) (*ledgerpb.ListEventsResponse, error) {
	events, err := s.service.ListEvents(ctx, req.GetCampaignId())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	result := make([]*ledgerpb.Event, 0, len(events))
	for _, e := range events {
		result = append(result, &ledgerpb.Event{
			Seq:       e.Seq,
			Type:      e.Type.String(),
			Actor:     string(e.Actor),
			Amount:    e.Amount.String(),
			CreatedAt: timestamppb.New(e.CreatedAt),
		})
	}
	return &ledgerpb.ListEventsResponse{Events: result}, nil
}
