package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/validators"
	"github.com/MKhiriev/go-linkup/models"
)

// profileService edits the profile value owned by a user row and builds
// the public views other users see.
type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            IDGenerator
	projector      *profileProjector

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, validator validators.Validator, ids IDGenerator,
	resolver media.Resolver, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		validator:      validator,
		ids:            ids,
		projector:      newProfileProjector(resolver),
		logger:         logger,
	}
}

// UpdateProfile applies the non-nil fields of update to the user.
//
// A username change is checked against other accounts first; the unique
// index catches a concurrent claim of the same name. The read-modify-write
// runs in one transaction and concurrent updates resolve last write wins.
func (p *profileService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.PublicProfile, error) {
	log := logger.FromContext(ctx)

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		update.Username = &username
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.PublicProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Username != nil {
		if err := p.checkUsernameFree(ctx, userID, *update.Username); err != nil {
			return models.PublicProfile{}, err
		}
	}

	var ids entryIDs
	if update.WorkHistory != nil && update.WorkHistory.Action == models.WorkHistoryAdd {
		ids.work = p.ids.Generate()
	}
	if update.Education != nil && update.Education.Action == models.WorkHistoryAdd {
		ids.education = p.ids.Generate()
	}

	user, err := p.userRepository.UpdateUser(ctx, userID, func(user *models.User) error {
		applyProfileUpdate(user, update, ids)
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Str("user_id", userID).Msg("profile update failed")
		return models.PublicProfile{}, err
	}

	return p.projector.project(ctx, user), nil
}

// SetAvatar stores a media reference on the profile. The bytes behind it
// are managed elsewhere.
func (p *profileService) SetAvatar(ctx context.Context, userID string, update models.AvatarUpdate) (models.PublicProfile, error) {
	update.Avatar = strings.TrimSpace(update.Avatar)
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.PublicProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := p.userRepository.UpdateUser(ctx, userID, func(user *models.User) error {
		user.Profile.Avatar = update.Avatar
		return nil
	})
	if err != nil {
		return models.PublicProfile{}, err
	}

	return p.projector.project(ctx, user), nil
}

func (p *profileService) GetPublicProfile(ctx context.Context, userID string) (models.PublicProfile, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.PublicProfile{}, err
	}

	return p.projector.project(ctx, user), nil
}

func (p *profileService) GetPublicProfileByUsername(ctx context.Context, username string) (models.PublicProfile, error) {
	user, err := p.userRepository.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return models.PublicProfile{}, err
	}

	return p.projector.project(ctx, user), nil
}

func (p *profileService) ListPublicProfiles(ctx context.Context) ([]models.PublicProfile, error) {
	users, err := p.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return p.projector.projectAll(ctx, users), nil
}

func (p *profileService) checkUsernameFree(ctx context.Context, userID, username string) error {
	owner, err := p.userRepository.FindUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("error checking username: %w", err)
	case owner.ID != userID:
		return store.ErrUsernameAlreadyExists
	}
	return nil
}

// entryIDs holds the ids given to list entries being added.
type entryIDs struct {
	work      string
	education string
}

// applyProfileUpdate merges update into user.
func applyProfileUpdate(user *models.User, update models.ProfileUpdate, ids entryIDs) {
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Headline != nil {
		user.Profile.Headline = *update.Headline
	}
	if update.Bio != nil {
		user.Profile.Bio = *update.Bio
	}
	if update.Location != nil {
		user.Profile.Location = *update.Location
	}

	if change := update.WorkHistory; change != nil {
		switch change.Action {
		case models.WorkHistoryAdd:
			entry := change.Entry
			entry.ID = ids.work
			user.Profile.WorkHistory = append(user.Profile.WorkHistory, entry)
		case models.WorkHistoryDelete:
			// deleting an unknown id is a no-op
			user.Profile.WorkHistory = slices.DeleteFunc(user.Profile.WorkHistory, func(e models.WorkHistoryEntry) bool {
				return e.ID == change.ID
			})
		}
	}

	if change := update.Education; change != nil {
		switch change.Action {
		case models.WorkHistoryAdd:
			entry := change.Entry
			entry.ID = ids.education
			user.Profile.Education = append(user.Profile.Education, entry)
		case models.WorkHistoryDelete:
			user.Profile.Education = slices.DeleteFunc(user.Profile.Education, func(e models.EducationEntry) bool {
				return e.ID == change.ID
			})
		}
	}
}
