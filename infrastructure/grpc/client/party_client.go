package client

import (
	"context"
	"fmt"
	pb "party-lab/infrastructure/grpc/partypb"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// PartyClient wraps the generated stub and remembers the session token after Login.
type PartyClient struct {
	conn   *grpc.ClientConn
	Client pb.PartyServiceClient

	mu    sync.RWMutex
	token string
}

// Dial opens a plaintext connection using the JSON codec.
func Dial(target string, opts ...grpc.DialOption) (*PartyClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(pb.CallOption()),
	}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	return &PartyClient{conn: conn, Client: pb.NewPartyServiceClient(conn)}, nil
}

func (c *PartyClient) Close() error {
	return c.conn.Close()
}

func (c *PartyClient) Login(ctx context.Context, username, password string) (*pb.LoginResponse, error) {
	resp, err := c.Client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return resp, nil
}

func (c *PartyClient) ListCharacters(ctx context.Context) ([]*pb.Character, error) {
	resp, err := c.Client.ListCharacters(c.authorized(ctx), &pb.ListCharactersRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Characters, nil
}

func (c *PartyClient) GenerateParties(ctx context.Context, req *pb.GeneratePartiesRequest) (*pb.GeneratePartiesResponse, error) {
	return c.Client.GenerateParties(c.authorized(ctx), req)
}

func (c *PartyClient) authorized(ctx context.Context) context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}
