package admin

import (
	"context"

	"rebookz-admin/internal/apiclient"
)

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	ListAdmins(ctx context.Context) ([]Admin, error)
	CreateAdmin(ctx context.Context, input NewAdmin) (*Admin, error)
	Config(ctx context.Context) (RemoteConfig, error)
	SetConfig(ctx context.Context, key string, value any) error
	ResetPassword(ctx context.Context, newPassword string) error
}

type repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) Repository {
	return &repository{api: api}
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := r.api.Get(ctx, "/admin/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListAdmins(ctx context.Context) ([]Admin, error) {
	var out []Admin
	if err := r.api.Get(ctx, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) CreateAdmin(ctx context.Context, input NewAdmin) (*Admin, error) {
	var a Admin
	if err := r.api.Post(ctx, "/admin/create", input, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Config(ctx context.Context) (RemoteConfig, error) {
	cfg := RemoteConfig{}
	if err := r.api.Get(ctx, "/admin/config", nil, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *repository) SetConfig(ctx context.Context, key string, value any) error {
	return r.api.Put(ctx, "/admin/config", configUpdate{Key: key, Value: value}, nil)
}

func (r *repository) ResetPassword(ctx context.Context, newPassword string) error {
	return r.api.Put(ctx, "/admin/reset-password", passwordReset{NewPassword: newPassword}, nil)
}
