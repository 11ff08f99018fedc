package service

import (
	"context"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/models"
)

// profileProjector builds the public view of users and resolves their
// avatar references into URLs.
type profileProjector struct {
	resolver media.Resolver
}

func newProfileProjector(resolver media.Resolver) *profileProjector {
	return &profileProjector{resolver: resolver}
}

// project never fails: an avatar that cannot be resolved leaves AvatarURL
// empty and is logged.
func (p *profileProjector) project(ctx context.Context, user models.User) models.PublicProfile {
	profile := models.PublicProfileOf(user)
	if p.resolver == nil || user.Profile.Avatar == "" {
		return profile
	}

	avatarURL, err := p.resolver.URL(ctx, user.Profile.Avatar)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("user_id", user.ID).
			Str("avatar", user.Profile.Avatar).
			Msg("avatar reference could not be resolved")
		return profile
	}
	profile.AvatarURL = avatarURL

	return profile
}

func (p *profileProjector) projectAll(ctx context.Context, users []models.User) []models.PublicProfile {
	profiles := make([]models.PublicProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, p.project(ctx, user))
	}
	return profiles
}
