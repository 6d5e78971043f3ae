// Package grpc exposes the sync services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/sanmitsu/internal/logging"
	pb "github.com/dmitrijs2005/sanmitsu/internal/proto"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
	"github.com/dmitrijs2005/sanmitsu/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (string, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type EntryService interface {
	Push(ctx context.Context, userID string, rows []models.Entry) ([]models.Entry, error)
	Pull(ctx context.Context, userID string, since string, limit int) ([]models.Entry, error)
}

type BackupService interface {
	GetBackupURL(ctx context.Context, userID string) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedEntrySyncServer
	address   string
	users     UserService
	entries   EntryService
	backups   BackupService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, es EntryService, bs BackupService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		entries:   es,
		backups:   bs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterEntrySyncServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
