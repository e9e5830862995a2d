package bloom_test

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/bloom/internal/app"
	"github.com/oggyb/bloom/internal/cache"
	"github.com/oggyb/bloom/internal/config"
	"github.com/oggyb/bloom/internal/db"
	blog "github.com/oggyb/bloom/internal/logger"
	pb "github.com/oggyb/bloom/internal/proto/bloom"
	"github.com/oggyb/bloom/internal/scorer"
	"github.com/oggyb/bloom/internal/server"
	"github.com/oggyb/bloom/internal/service/bloom"
)

var epoch = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

//
// Test helpers
//

// constScorer scores every cross-group pair the same.
type constScorer float64

func (c constScorer) Score(context.Context, scorer.Subject, scorer.Subject) (float64, error) {
	return float64(c), nil
}

// SeedMinimalTestData inserts a minimal, deterministic dataset.
//
// Dataset:
//   - Users: user1 (male), user2..user5 (female), user4 unverified
//   - Interactions:
//   - user2 → user1 = liked
//   - user3 → user1 = liked
//   - user1 → user3 = rejected
func SeedMinimalTestData(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	users := []db.User{
		{ID: 1, Username: "user1", Email: "u1@test.com", PasswordHash: "x", RollNumber: "R0001", Gender: db.GroupMale, Verified: true, OnboardingCompleted: true},
		{ID: 2, Username: "user2", Email: "u2@test.com", PasswordHash: "x", RollNumber: "R0002", Gender: db.GroupFemale, Verified: true, OnboardingCompleted: true},
		{ID: 3, Username: "user3", Email: "u3@test.com", PasswordHash: "x", RollNumber: "R0003", Gender: db.GroupFemale, Verified: true, OnboardingCompleted: true},
		{ID: 4, Username: "user4", Email: "u4@test.com", PasswordHash: "x", RollNumber: "R0004", Gender: db.GroupFemale, OnboardingCompleted: true},
		{ID: 5, Username: "user5", Email: "u5@test.com", PasswordHash: "x", RollNumber: "R0005", Gender: db.GroupFemale, Verified: true, OnboardingCompleted: true},
	}
	require.NoError(t, gdb.Create(&users).Error)

	interactions := []db.Interaction{
		{FromUserID: 2, ToUserID: 1, State: db.StateLiked},
		{FromUserID: 3, ToUserID: 1, State: db.StateLiked},
		{FromUserID: 1, ToUserID: 3, State: db.StateRejected},
	}
	require.NoError(t, gdb.Create(&interactions).Error)
}

// setupService spins up an in-memory SQLite DB, seeds test data, starts a
// miniredis, and wires everything into a SignalService instance.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) (*bloom.Service, *app.AppContext) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dbase, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		NowFunc: db.Now,
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(db.Models()...))
	SeedMinimalTestData(t, dbase)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	mock := clock.NewMock()
	mock.Set(epoch)

	appCtx := app.New(cfg, dbase, cache.NewRedisCache(cfg), blog.Nop(),
		app.WithClock(mock),
		app.WithScorer(constScorer(0.42)),
	)
	return bloom.NewSignalService(appCtx), appCtx
}

func ptr(f float64) *float64 { return &f }

func code(err error) codes.Code {
	return status.Code(err)
}

//
// Tests
//

func TestUpdateLocationValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: "1", Lat: ptr(31.254)})
	assert.Equal(t, codes.InvalidArgument, code(err))

	_, err = svc.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: "1", Lat: ptr(91), Lng: ptr(75.706)})
	assert.Equal(t, codes.InvalidArgument, code(err))

	_, err = svc.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: "abc", Lat: ptr(31.254), Lng: ptr(75.706)})
	assert.Equal(t, codes.InvalidArgument, code(err))

	_, err = svc.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: "1", Lat: ptr(31.254), Lng: ptr(75.706)})
	require.NoError(t, err)
}

// TestCheckSignalsNearby walks the whole flow: two heartbeats, one
// evaluation, symmetric visibility.
func TestCheckSignalsNearby(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	// everyone within ~15m; user2 and user3 already interacted with user1,
	// user4 is unverified, only user5 is a fresh candidate
	heartbeats := map[string][2]float64{
		"1": {31.2540, 75.7060},
		"2": {31.2541, 75.7061},
		"3": {31.2541, 75.7060},
		"4": {31.2540, 75.7061},
		"5": {31.2539, 75.7060},
	}
	for id, p := range heartbeats {
		_, err := svc.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: id, Lat: ptr(p[0]), Lng: ptr(p[1])})
		require.NoError(t, err)
	}

	resp, err := svc.CheckSignals(ctx, &pb.CheckSignalsRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Signals, 1)
	got := resp.Signals[0]
	assert.Equal(t, "5", got.Id)
	assert.Equal(t, 0.42, got.Score)
	assert.Equal(t, db.SourceProximity, got.Source)
	assert.Equal(t, epoch.Add(10*time.Minute).UnixMilli(), got.ExpiresAtUnixMs)
	assert.Equal(t, (10 * time.Minute).Milliseconds(), got.FreshForMs)
	assert.True(t, got.Fresh)

	// visible from the other side without rescoring
	theirs, err := svc.CheckSignals(ctx, &pb.CheckSignalsRequest{UserId: "5"})
	require.NoError(t, err)
	require.Len(t, theirs.Signals, 1)
	assert.Equal(t, "1", theirs.Signals[0].Id)
}

func TestCheckSignalsUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.CheckSignals(ctx, &pb.CheckSignalsRequest{UserId: "99"})
	assert.Equal(t, codes.NotFound, code(err))

	_, err = svc.CheckSignals(ctx, &pb.CheckSignalsRequest{UserId: "4"})
	assert.Equal(t, codes.NotFound, code(err))
}

func TestGetSignalScore(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.GetSignalScore(ctx, &pb.GetSignalScoreRequest{UserId: "1", OtherUserId: "2"})
	require.NoError(t, err)
	assert.Equal(t, 0.42, resp.Score)

	// same group → 0
	resp, err = svc.GetSignalScore(ctx, &pb.GetSignalScoreRequest{UserId: "2", OtherUserId: "3"})
	require.NoError(t, err)
	assert.Zero(t, resp.Score)

	_, err = svc.GetSignalScore(ctx, &pb.GetSignalScoreRequest{UserId: "1", OtherUserId: "99"})
	assert.Equal(t, codes.NotFound, code(err))
}

// TestRightSwipeMatch: user2 already liked user1 in the seed dataset.
func TestRightSwipeMatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	resp, err := svc.RightSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "2"})
	require.NoError(t, err)
	assert.True(t, resp.Matched)
	assert.Equal(t, "MATCH", resp.Type)
}

// TestRightSwipeBlocked: user1 rejected user3, so user3's like goes nowhere.
func TestRightSwipeBlocked(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	// user3 is the one rejected; a new like from user3 is blocked
	resp, err := svc.RightSwipe(ctx, &pb.SwipeRequest{UserId: "3", OtherUserId: "1"})
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	assert.Equal(t, "BLOCKED", resp.Type)
}

func TestSwipeErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.RightSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "1"})
	assert.Equal(t, codes.InvalidArgument, code(err))

	_, err = svc.RightSwipe(ctx, &pb.SwipeRequest{UserId: "1"})
	assert.Equal(t, codes.InvalidArgument, code(err))

	_, err = svc.LeftSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "4"})
	assert.Equal(t, codes.NotFound, code(err))

	resp, err := svc.LeftSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "2"})
	require.NoError(t, err)
	assert.True(t, resp.Ok)
}

// TestListMatchesAndSparks: user2 is a spark until user1 likes back; user3
// never shows because user1 rejected them.
func TestListMatchesAndSparks(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	sparks, err := svc.ListSparks(ctx, &pb.ListUsersRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, sparks.Users, 1)
	assert.Equal(t, "2", sparks.Users[0].Id)
	assert.Nil(t, sparks.NextPaginationToken)

	_, err = svc.RightSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "2"})
	require.NoError(t, err)

	sparks, err = svc.ListSparks(ctx, &pb.ListUsersRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Empty(t, sparks.Users)

	matches, err := svc.ListMatches(ctx, &pb.ListUsersRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, matches.Users, 1)
	assert.Equal(t, "2", matches.Users[0].Id)

	bad := "not-a-token"
	_, err = svc.ListMatches(ctx, &pb.ListUsersRequest{UserId: "1", PaginationToken: &bad})
	assert.Equal(t, codes.InvalidArgument, code(err))
}

// TestOverGRPC drives the registered service through a generated client.
func TestOverGRPC(t *testing.T) {
	ctx := context.Background()
	_, appCtx := setupService(t)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(blog.Nop(), nil, bloom.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client := pb.NewSignalServiceClient(conn)

	swipe, err := client.RightSwipe(ctx, &pb.SwipeRequest{UserId: "1", OtherUserId: "2"})
	require.NoError(t, err)
	assert.Equal(t, "MATCH", swipe.Type)

	_, err = client.UpdateLocation(ctx, &pb.UpdateLocationRequest{UserId: "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	matches, err := client.ListMatches(ctx, &pb.ListUsersRequest{UserId: "2"})
	require.NoError(t, err)
	require.Len(t, matches.Users, 1)
	assert.Equal(t, "1", matches.Users[0].Id)

	// reflection serves the compiled descriptor for grpcurl
	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: pb.SignalService_ServiceDesc.ServiceName,
		},
	}))
	ref, err := stream.Recv()
	require.NoError(t, err)
	files := ref.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.Len(t, files, 1)

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	assert.Equal(t, "bloom/bloom.proto", fd.GetName())
	require.Len(t, fd.GetService(), 1)
	assert.Len(t, fd.GetService()[0].GetMethod(), 7)
}
