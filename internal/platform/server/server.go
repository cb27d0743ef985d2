package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	mutasipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/mutasi/v1"
	pegawaipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/pegawai/v1"
	posisipb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/posisi/v1"
	riwayatpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/riwayat/v1"
	userpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/user/v1"
	wilayahpb "github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/wilayah/v1"
	"github.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/handler"
	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	"github.com/bkpsdm/simpeg-grpc/internal/core/user"
	"github.com/bkpsdm/simpeg-grpc/internal/core/wilayah"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Services bundles the use cases exposed over gRPC.
type Services struct {
	Pegawai pegawai.UseCase
	Riwayat riwayat.UseCase
	Mutasi  mutasi.UseCase
	Posisi  posisi.UseCase
	User    user.UseCase
	Wilayah wilayah.Provider
}

// Server manages the gRPC server lifecycle.
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New builds a gRPC server listening on the given address with every
// service registered and request logging installed.
func New(listenAddr string, logger *zap.Logger, svcs Services, opts ...grpc.ServerOption) *Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(loggingUnaryInterceptor(logger)))
	srv := grpc.NewServer(opts...)

	pegawaipb.RegisterPegawaiServiceServer(srv, handler.NewPegawaiGrpcHandler(svcs.Pegawai))
	riwayatpb.RegisterRiwayatJabatanServiceServer(srv, handler.NewRiwayatGrpcHandler(svcs.Riwayat))
	mutasipb.RegisterMutasiServiceServer(srv, handler.NewMutasiGrpcHandler(svcs.Mutasi))
	posisipb.RegisterPosisiTersediaServiceServer(srv, handler.NewPosisiGrpcHandler(svcs.Posisi))
	userpb.RegisterUserServiceServer(srv, handler.NewUserGrpcHandler(svcs.User))
	wilayahpb.RegisterWilayahServiceServer(srv, handler.NewWilayahGrpcHandler(svcs.Wilayah))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run starts the server and performs a GracefulStop when the context is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop stops the server, letting in-flight calls finish.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
