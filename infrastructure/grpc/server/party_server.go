package server

import (
	"context"
	"log/slog"
	"party-lab/auth"
	"party-lab/balancer"
	"party-lab/domain"
	"party-lab/errors"
	pb "party-lab/infrastructure/grpc/partypb"
	"party-lab/services"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type PartyServer struct {
	pb.UnimplementedPartyServiceServer
	authService      services.IAuthService
	characterService services.ICharacterService
	partyService     services.IPartyService
	log              *slog.Logger
}

func NewPartyServer(
	log *slog.Logger,
	authService services.IAuthService,
	characterService services.ICharacterService,
	partyService services.IPartyService,
) *PartyServer {
	return &PartyServer{
		authService:      authService,
		characterService: characterService,
		partyService:     partyService,
		log:              log,
	}
}

// NewGRPCServer builds a server with the party service, the health service and token checks
// on every method except Login.
func NewGRPCServer(partyServer *PartyServer, issuer *auth.TokenIssuer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		auth.UnaryInterceptor(issuer,
			pb.PartyService_Login_FullMethodName,
			healthpb.Health_Check_FullMethodName,
		),
	))
	s := grpc.NewServer(opts...)
	pb.RegisterPartyServiceServer(s, partyServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("party.v1.PartyService", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)
	return s
}

func (s *PartyServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, session, err := s.authService.Login(ctx, auth.LoginRequest{Username: req.Username, Password: req.Password})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LoginResponse{Token: token.String(), Username: session.Username, Role: string(session.Role)}, nil
}

func (s *PartyServer) ListCharacters(ctx context.Context, _ *pb.ListCharactersRequest) (*pb.ListCharactersResponse, error) {
	characters, err := s.characterService.List(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListCharactersResponse{Characters: lo.Map(characters, toCharacterResponse)}, nil
}

func (s *PartyServer) GenerateParties(ctx context.Context, req *pb.GeneratePartiesRequest) (*pb.GeneratePartiesResponse, error) {
	result, err := s.partyService.Generate(ctx, services.GenerateRequest{
		IDs: lo.Map(req.Ids, func(id int64, _ int) domain.CharacterID {
			return domain.CharacterID(id)
		}),
		MinSize:  int(req.MinSize),
		MaxSize:  int(req.MaxSize),
		Strategy: req.Strategy,
		Seed:     req.Seed,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.log.Debug("GenerateParties served", "parties", len(result.Parties))
	return &pb.GeneratePartiesResponse{
		Parties: lo.Map(result.Parties, toPartyResponse),
		Stats:   toStatsResponse(result.Stats),
	}, nil
}

func toCharacterResponse(c domain.Character, _ int) *pb.Character {
	return &pb.Character{
		Id:         int64(c.ID),
		Name:       c.Name,
		Race:       c.Race,
		CharClass:  c.CharClass,
		Level:      int32(c.Level),
		Player:     c.Player,
		Background: c.Background,
	}
}

func toPartyResponse(p domain.Party, _ int) *pb.Party {
	return &pb.Party{
		Members:      lo.Map(p, toCharacterResponse),
		TotalLevel:   int32(p.TotalLevel()),
		AverageLevel: p.AverageLevel(),
		ClassCounts: lo.MapValues(p.ClassCounts(), func(n int, _ string) int32 {
			return int32(n)
		}),
	}
}

func toStatsResponse(stats balancer.Stats) *pb.Stats {
	return &pb.Stats{
		Strategy:    stats.Strategy,
		Characters:  int32(stats.Characters),
		Parties:     int32(stats.Parties),
		SeedSpread:  int32(stats.SeedSpread),
		FinalSpread: int32(stats.FinalSpread),
		Iterations:  int32(stats.Iterations),
	}
}
