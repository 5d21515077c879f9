package main

import (
	"context"
	"fmt"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/record"
	"github.com/TomasB/geolookup/internal/session"
	"github.com/TomasB/geolookup/internal/value"
	geolookupv1 "github.com/TomasB/geolookup/pkg/geolookup/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// backend runs lookups either in-process or against a geolookup server.
type backend interface {
	Lookup(ctx context.Context, ip string, t record.Type) (value.Value, error)
	Country(ctx context.Context, ip, locale string) (*string, error)
	Refresh(ctx context.Context) error
	Close() error
}

type localBackend struct {
	sess *session.Session
}

func newLocalBackend(root string) *localBackend {
	return &localBackend{sess: session.New(data.NewLocator(root))}
}

func (b *localBackend) Lookup(_ context.Context, ip string, t record.Type) (value.Value, error) {
	return b.sess.Query(ip, int64(t))
}

func (b *localBackend) Country(_ context.Context, ip, locale string) (*string, error) {
	name, ok, err := b.sess.Country(ip, locale)
	if err != nil || !ok {
		return nil, err
	}
	return &name, nil
}

func (b *localBackend) Refresh(_ context.Context) error {
	return b.sess.Refresh()
}

func (b *localBackend) Close() error {
	return b.sess.Close()
}

type remoteBackend struct {
	conn   *grpc.ClientConn
	client *geolookupv1.Client
}

func newRemoteBackend(addr string) (*remoteBackend, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &remoteBackend{conn: conn, client: geolookupv1.NewClient(conn)}, nil
}

func (b *remoteBackend) Lookup(ctx context.Context, ip string, t record.Type) (value.Value, error) {
	resp, err := b.client.Lookup(ctx, geolookupv1.NewLookupRequest(ip, int64(t)))
	if err != nil {
		return value.Null(), err
	}
	return value.FromProto(resp.GetFields()[geolookupv1.FieldResult])
}

func (b *remoteBackend) Country(ctx context.Context, ip, locale string) (*string, error) {
	resp, err := b.client.Country(ctx, geolookupv1.NewCountryRequest(ip, locale))
	if err != nil {
		return nil, err
	}
	name, ok := resp.GetFields()[geolookupv1.FieldName].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, nil
	}
	return &name.StringValue, nil
}

func (b *remoteBackend) Refresh(ctx context.Context) error {
	_, err := b.client.Refresh(ctx, &structpb.Struct{})
	return err
}

func (b *remoteBackend) Close() error {
	return b.conn.Close()
}
