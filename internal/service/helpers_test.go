package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/models"
)

// ─────────────────────────────────────────────
// Shared fakes
// ─────────────────────────────────────────────

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var errResolve = errors.New("resolver is down")

type failingResolver struct{}

func (failingResolver) URL(context.Context, string) (string, error) {
	return "", errResolve
}

func staticResolver() media.Resolver {
	return media.NewStaticResolver("/uploads")
}

func testUser(id, username string) models.User {
	return models.User{
		ID:        id,
		Name:      username,
		Username:  username,
		Email:     username + "@example.com",
		Profile:   models.NewProfile(),
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}
