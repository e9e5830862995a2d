package bloom

import (
	"google.golang.org/grpc"

	"github.com/oggyb/bloom/internal/app"
	pb "github.com/oggyb/bloom/internal/proto/bloom"
)

// Registrar ties the SignalService into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the SignalService
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the SignalService implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewSignalService(r.appCtx)
	pb.RegisterSignalServiceServer(s, service)
}
