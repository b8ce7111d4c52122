package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/transport"
)

func TestUpdateProfileSelfOnly(t *testing.T) {
	r := newTestRepo(t)
	svc := &ArtisanService{Repo: r}
	ctx := context.Background()

	owner := seedArtisan(t, r, "owner@x.com")
	other := seedArtisan(t, r, "other@x.com")

	_, err := svc.UpdateProfile(ctx, owner.ID, other.ID, transport.UpdateArtisanRequest{Name: strPtr("hijacked")})
	require.ErrorIs(t, err, ErrForbidden)

	got, err := r.GetArtisan(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "artisan", got.Name)
}

func TestUpdateProfileMissingTarget(t *testing.T) {
	r := newTestRepo(t)
	svc := &ArtisanService{Repo: r}

	_, err := svc.UpdateProfile(context.Background(), 404, 404, transport.UpdateArtisanRequest{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileRejectsNonArtisanTarget(t *testing.T) {
	r := newTestRepo(t)
	svc := &ArtisanService{Repo: r}
	ctx := context.Background()

	customer := models.User{Name: "c", Email: "c@x.com", PasswordHash: "x", Role: models.RoleCustomer, IsActive: true}
	require.NoError(t, r.DB.Create(&customer).Error)

	_, err := svc.UpdateProfile(ctx, customer.ID, customer.ID, transport.UpdateArtisanRequest{Name: strPtr("n")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileNormalizesEmailAndFormats(t *testing.T) {
	r := newTestRepo(t)
	svc := &ArtisanService{Repo: r}
	ctx := context.Background()

	a := seedArtisan(t, r, "a@x.com")

	view, err := svc.UpdateProfile(ctx, a.ID, a.ID, transport.UpdateArtisanRequest{
		Email:       strPtr("  New@Example.COM "),
		Specialties: strPtr(" pottery, weaving ,,  glass "),
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", view.Email)
	require.Equal(t, []string{"pottery", "weaving", "glass"}, view.Specialties)
}

func TestGetArtisanHidesInactiveAndNonArtisan(t *testing.T) {
	r := newTestRepo(t)
	svc := &ArtisanService{Repo: r}
	ctx := context.Background()

	inactive := models.User{Name: "i", Email: "i@x.com", PasswordHash: "x", Role: models.RoleArtisan, IsActive: false}
	require.NoError(t, r.DB.Create(&inactive).Error)
	customer := models.User{Name: "c", Email: "c@x.com", PasswordHash: "x", Role: models.RoleCustomer, IsActive: true}
	require.NoError(t, r.DB.Create(&customer).Error)

	_, err := svc.Get(ctx, inactive.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, customer.ID)
	require.ErrorIs(t, err, ErrNotFound)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, views)
}
