// Package geolookupv1 declares the geolookup.v1.GeoLookupService gRPC service.
//
// Messages are google.protobuf.Struct values:
//
//	Lookup   {ip, record_type}  -> {result}
//	Country  {ip, locale}       -> {name}
//	Refresh  {}                 -> {success}
//	Records  {}                 -> {records: {<name>: <code>}}
//
// record_type may be a number or a record type name. result keeps field order
// and number kinds: mappings arrive as {"mapping": [[name, value], ...]} and
// floats as {"float": n}; value.FromProto decodes them. Failures are returned
// as gRPC statuses whose message is the lookup error text.
package geolookupv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "geolookup.v1.GeoLookupService"

const (
	LookupMethod  = "/" + ServiceName + "/Lookup"
	CountryMethod = "/" + ServiceName + "/Country"
	RefreshMethod = "/" + ServiceName + "/Refresh"
	RecordsMethod = "/" + ServiceName + "/Records"
)

// Field names used in request and response structs.
const (
	FieldIP         = "ip"
	FieldRecordType = "record_type"
	FieldLocale     = "locale"
	FieldResult     = "result"
	FieldName       = "name"
	FieldSuccess    = "success"
	FieldRecords    = "records"
)

// Server is the server API for GeoLookupService.
type Server interface {
	Lookup(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Country(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Refresh(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Records(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedServer can be embedded to have forward compatible implementations.
type UnimplementedServer struct{}

func (UnimplementedServer) Lookup(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Lookup not implemented")
}

func (UnimplementedServer) Country(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Country not implemented")
}

func (UnimplementedServer) Refresh(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}

func (UnimplementedServer) Records(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Records not implemented")
}

// RegisterServer registers srv on s.
func RegisterServer(s grpc.ServiceRegistrar, srv Server) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler(method string, call func(Server, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(Server), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(Server), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for GeoLookupService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Lookup", Handler: unaryHandler(LookupMethod, Server.Lookup)},
		{MethodName: "Country", Handler: unaryHandler(CountryMethod, Server.Country)},
		{MethodName: "Refresh", Handler: unaryHandler(RefreshMethod, Server.Refresh)},
		{MethodName: "Records", Handler: unaryHandler(RecordsMethod, Server.Records)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "geolookup/v1/geolookup.proto",
}

// Client is the client API for GeoLookupService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient returns a Client that issues calls over cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Lookup(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, LookupMethod, in, opts...)
}

func (c *Client) Country(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, CountryMethod, in, opts...)
}

func (c *Client) Refresh(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RefreshMethod, in, opts...)
}

func (c *Client) Records(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RecordsMethod, in, opts...)
}

// NewLookupRequest builds a Lookup request.
func NewLookupRequest(ip string, recordType int64) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldIP:         structpb.NewStringValue(ip),
		FieldRecordType: structpb.NewNumberValue(float64(recordType)),
	}}
}

// NewCountryRequest builds a Country request. An empty locale is omitted.
func NewCountryRequest(ip, locale string) *structpb.Struct {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldIP: structpb.NewStringValue(ip),
	}}
	if locale != "" {
		req.Fields[FieldLocale] = structpb.NewStringValue(locale)
	}
	return req
}
