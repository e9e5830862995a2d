package bloom

import (
	"context"
	"strconv"

	"github.com/oggyb/bloom/internal/app"
	"github.com/oggyb/bloom/internal/db"
	svcErr "github.com/oggyb/bloom/internal/errors"
	pb "github.com/oggyb/bloom/internal/proto/bloom"
	"github.com/oggyb/bloom/internal/repository"
	"github.com/oggyb/bloom/internal/service/proximity"
)

// listPageSize is the page size of ListMatches and ListSparks.
const listPageSize = 20

// Service implements the SignalService gRPC API.
// It translates wire messages into calls on the location index, the
// proximity orchestrator and the swipe matcher.
type Service struct {
	appCtx          *app.AppContext
	interactionRepo *repository.InteractionRepository

	pb.UnimplementedSignalServiceServer
}

// NewSignalService creates a new SignalService with dependencies from AppContext.
func NewSignalService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:          appCtx,
		interactionRepo: repository.NewInteractionRepository(appCtx.DB),
	}
}

// UpdateLocation records a location heartbeat.
//
// Behavior:
//   - Moves shorter than the debounce distance only refresh the timestamp.
//   - Missing or out-of-range coordinates are rejected.
//
// Example:
//
//	svc.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: "42", Lat: &lat, Lng: &lng})
func (s *Service) UpdateLocation(ctx context.Context, req *pb.UpdateLocationRequest) (*pb.UpdateLocationResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if req.Lat == nil || req.Lng == nil {
		return nil, svcErr.InvalidArgument("lat and lng are required")
	}

	if err := s.appCtx.Index.Update(userID, *req.Lat, *req.Lng); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UpdateLocationResponse{}, nil
}

// CheckSignals returns the caller's active signals, computing new ones from
// nearby users first.
//
// Example:
//
//	svc.CheckSignals(ctx, &pb.CheckSignalsRequest{UserId: "42"})
func (s *Service) CheckSignals(ctx context.Context, req *pb.CheckSignalsRequest) (*pb.CheckSignalsResponse, error) {
	s.appCtx.Logger.Debug("CheckSignals called", "user", req.GetUserId())

	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	views, err := s.appCtx.Orchestrator.Evaluate(ctx, userID, proximity.NearbyMode(s.appCtx.Config))
	if err != nil {
		s.appCtx.Logger.Error("Evaluate failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	now := s.appCtx.Orchestrator.Now()
	resp := &pb.CheckSignalsResponse{Signals: make([]*pb.Signal, 0, len(views))}
	for _, v := range views {
		resp.Signals = append(resp.Signals, &pb.Signal{
			Id:              strconv.FormatUint(v.UserID, 10),
			Score:           v.Score,
			Source:          v.Source,
			ExpiresAtUnixMs: v.ExpiresAt.UnixMilli(),
			FreshForMs:      v.FreshFor(now).Milliseconds(),
			Fresh:           v.Fresh,
		})
	}

	s.appCtx.Logger.Debug("CheckSignals result", "user", userID, "signal_count", len(resp.Signals))
	return resp, nil
}

// GetSignalScore returns the compatibility of two users. Same-group pairs
// and scorer outages report 0.
func (s *Service) GetSignalScore(ctx context.Context, req *pb.GetSignalScoreRequest) (*pb.GetSignalScoreResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	otherID, err := parseID("other_user_id", req.GetOtherUserId())
	if err != nil {
		return nil, err
	}

	score, err := s.appCtx.Orchestrator.PairScore(ctx, userID, otherID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetSignalScoreResponse{Score: score}, nil
}

// RightSwipe likes other_user_id and reports MATCH, SPARK or BLOCKED.
//
// Example:
//
//	svc.RightSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "2"})
func (s *Service) RightSwipe(ctx context.Context, req *pb.SwipeRequest) (*pb.RightSwipeResponse, error) {
	s.appCtx.Logger.Debug("RightSwipe called", "user", req.GetUserId(), "other", req.GetOtherUserId())

	userID, otherID, err := parsePair(req)
	if err != nil {
		return nil, err
	}

	outcome, err := s.appCtx.Matcher.RightSwipe(ctx, userID, otherID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RightSwipeResponse{
		Matched: outcome == repository.OutcomeMatch,
		Type:    string(outcome),
	}, nil
}

// LeftSwipe rejects other_user_id permanently.
func (s *Service) LeftSwipe(ctx context.Context, req *pb.SwipeRequest) (*pb.LeftSwipeResponse, error) {
	s.appCtx.Logger.Debug("LeftSwipe called", "user", req.GetUserId(), "other", req.GetOtherUserId())

	userID, otherID, err := parsePair(req)
	if err != nil {
		return nil, err
	}

	if err := s.appCtx.Matcher.LeftSwipe(ctx, userID, otherID); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.LeftSwipeResponse{Ok: true}, nil
}

// ListMatches returns users who share a mutual like with user_id.
//
// Behavior:
//   - Ordered by most recent like first.
//   - Supports cursor-based pagination with paginationToken.
//   - Returns id + timestamp pairs.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	rows, nextToken, err := s.interactionRepo.ListMatches(ctx, userID, req.PaginationToken, listPageSize)
	if err != nil {
		s.appCtx.Logger.Error("ListMatches failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return listResponse(rows, nextToken), nil
}

// ListSparks returns users who liked user_id and are still waiting on a
// decision.
func (s *Service) ListSparks(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	rows, nextToken, err := s.interactionRepo.ListSparks(ctx, userID, req.PaginationToken, listPageSize)
	if err != nil {
		s.appCtx.Logger.Error("ListSparks failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return listResponse(rows, nextToken), nil
}

func listResponse(rows []db.Interaction, nextToken *string) *pb.ListUsersResponse {
	resp := &pb.ListUsersResponse{Users: make([]*pb.ListUsersResponse_User, 0, len(rows))}
	for _, r := range rows {
		resp.Users = append(resp.Users, &pb.ListUsersResponse_User{
			Id:            strconv.FormatUint(r.FromUserID, 10),
			UnixTimestamp: uint64(r.UpdatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}
	return resp
}

func parseID(field, value string) (uint64, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, svcErr.InvalidArgument(field + " must be a valid uint64")
	}
	return id, nil
}

func parsePair(req *pb.SwipeRequest) (uint64, uint64, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return 0, 0, err
	}
	otherID, err := parseID("other_user_id", req.GetOtherUserId())
	if err != nil {
		return 0, 0, err
	}
	return userID, otherID, nil
}
