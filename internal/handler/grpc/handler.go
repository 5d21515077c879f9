package grpc

import (
	"context"
	"errors"
	"math"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/record"
	geolookupv1 "github.com/TomasB/geolookup/pkg/geolookup/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Handler implements the gRPC GeoLookupService.
type Handler struct {
	geolookupv1.UnimplementedServer
	geo data.Geolocator
}

// NewHandler creates a new gRPC handler backed by geo.
func NewHandler(geo data.Geolocator) *Handler {
	return &Handler{geo: geo}
}

// Lookup returns the record tree for an IP and record type.
func (h *Handler) Lookup(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ip := req.GetFields()[geolookupv1.FieldIP].GetStringValue()
	if ip == "" {
		return nil, status.Error(codes.InvalidArgument, "ip is required")
	}
	if _, err := record.ParseAddress(ip); err != nil {
		return nil, statusFor(err)
	}
	t, err := recordType(req.GetFields()[geolookupv1.FieldRecordType])
	if err != nil {
		return nil, statusFor(err)
	}

	result, err := h.geo.Query(ip, t.Code())
	if err != nil {
		return nil, statusFor(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		geolookupv1.FieldResult: result.Proto(),
	}}, nil
}

// Country returns the best country name for an IP and locale.
func (h *Handler) Country(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	ip := req.GetFields()[geolookupv1.FieldIP].GetStringValue()
	if ip == "" {
		return nil, status.Error(codes.InvalidArgument, "ip is required")
	}
	locale := req.GetFields()[geolookupv1.FieldLocale].GetStringValue()

	name, ok, err := h.geo.Country(ip, locale)
	if err != nil {
		return nil, statusFor(err)
	}

	nameValue := structpb.NewNullValue()
	if ok {
		nameValue = structpb.NewStringValue(name)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		geolookupv1.FieldName: nameValue,
	}}, nil
}

// Refresh reopens the database of this context.
func (h *Handler) Refresh(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := h.geo.Refresh(); err != nil {
		return nil, statusFor(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		geolookupv1.FieldSuccess: structpb.NewBoolValue(true),
	}}, nil
}

// Records lists the record type names and their codes.
func (h *Handler) Records(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	types := &structpb.Struct{Fields: make(map[string]*structpb.Value)}
	for _, info := range record.Types() {
		types.Fields[info.Name] = structpb.NewNumberValue(float64(info.Code))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		geolookupv1.FieldRecords: structpb.NewStructValue(types),
	}}, nil
}

func recordType(v *structpb.Value) (record.Type, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n != math.Trunc(n) {
			return 0, status.Errorf(codes.InvalidArgument, "record_type must be an integer, got %v", n)
		}
		return record.ParseType(int64(n))
	case *structpb.Value_StringValue:
		return record.ParseTypeName(k.StringValue)
	default:
		return 0, status.Error(codes.InvalidArgument, "record_type is required")
	}
}

func statusFor(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	var perr *record.ParseError
	switch {
	case errors.As(err, &perr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, data.ErrNotInstalled):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
