package partypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PartyService_Login_FullMethodName           = "/party.v1.PartyService/Login"
	PartyService_ListCharacters_FullMethodName  = "/party.v1.PartyService/ListCharacters"
	PartyService_GenerateParties_FullMethodName = "/party.v1.PartyService/GenerateParties"
)

type PartyServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	GenerateParties(ctx context.Context, in *GeneratePartiesRequest, opts ...grpc.CallOption) (*GeneratePartiesResponse, error)
}

type partyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPartyServiceClient(cc grpc.ClientConnInterface) PartyServiceClient {
	return &partyServiceClient{cc}
}

func (c *partyServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.cc.Invoke(ctx, PartyService_Login_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *partyServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.cc.Invoke(ctx, PartyService_ListCharacters_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *partyServiceClient) GenerateParties(ctx context.Context, in *GeneratePartiesRequest, opts ...grpc.CallOption) (*GeneratePartiesResponse, error) {
	out := new(GeneratePartiesResponse)
	if err := c.cc.Invoke(ctx, PartyService_GenerateParties_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{CallOption()}, opts...)
}

type PartyServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	GenerateParties(context.Context, *GeneratePartiesRequest) (*GeneratePartiesResponse, error)
}

// UnimplementedPartyServiceServer can be embedded to keep forward compatibility.
type UnimplementedPartyServiceServer struct{}

func (UnimplementedPartyServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedPartyServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}

func (UnimplementedPartyServiceServer) GenerateParties(context.Context, *GeneratePartiesRequest) (*GeneratePartiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateParties not implemented")
}

func RegisterPartyServiceServer(s grpc.ServiceRegistrar, srv PartyServiceServer) {
	s.RegisterService(&PartyService_ServiceDesc, srv)
}

func _PartyService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartyServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartyService_Login_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PartyServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PartyService_ListCharacters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartyServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartyService_ListCharacters_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PartyServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PartyService_GenerateParties_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GeneratePartiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PartyServiceServer).GenerateParties(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PartyService_GenerateParties_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PartyServiceServer).GenerateParties(ctx, req.(*GeneratePartiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var PartyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "party.v1.PartyService",
	HandlerType: (*PartyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: _PartyService_Login_Handler},
		{MethodName: "ListCharacters", Handler: _PartyService_ListCharacters_Handler},
		{MethodName: "GenerateParties", Handler: _PartyService_GenerateParties_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/party/v1/party.proto",
}
