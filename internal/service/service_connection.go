package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/validators"
	"github.com/MKhiriev/go-linkup/models"
)

// connectionService implements the pending -> connected state machine on
// top of the relation edges kept by store.ConnectionRepository.
//
// Per ordered pair of users the states are None, Pending(A->B) and
// Connected. Every transition is a single repository call, so atomicity is
// the repository's job.
type connectionService struct {
	connectionRepository store.ConnectionRepository
	userRepository       store.UserRepository
	validator            validators.Validator
	projector            *profileProjector

	logger *logger.Logger
}

func NewConnectionService(connectionRepository store.ConnectionRepository, userRepository store.UserRepository,
	validator validators.Validator, resolver media.Resolver, logger *logger.Logger) ConnectionService {
	return &connectionService{
		connectionRepository: connectionRepository,
		userRepository:       userRepository,
		validator:            validator,
		projector:            newProfileProjector(resolver),
		logger:               logger,
	}
}

// SendRequest records that fromID wants to connect with toID.
// Sending again, or sending to an existing connection, changes nothing.
func (c *connectionService) SendRequest(ctx context.Context, fromID, toID string) error {
	fromID, toID, err := c.checkPair(ctx, fromID, toID)
	if err != nil {
		return err
	}

	if _, err = c.userRepository.FindUserByID(ctx, toID); err != nil {
		return err
	}

	if err = c.connectionRepository.AddPendingRequest(ctx, fromID, toID); err != nil {
		logger.FromContext(ctx).Err(err).Str("from", fromID).Str("to", toID).Msg("sending connection request failed")
		return err
	}

	return nil
}

// Accept turns the pending request of requesterID into a connection on
// both sides. Without a pending request it returns
// store.ErrPendingRequestNotFound and nothing changes.
func (c *connectionService) Accept(ctx context.Context, targetID, requesterID string) error {
	requesterID, targetID, err := c.checkPair(ctx, requesterID, targetID)
	if err != nil {
		return err
	}

	if err = c.connectionRepository.AcceptPendingRequest(ctx, targetID, requesterID); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("target", targetID).Str("requester", requesterID).Msg("accept failed")
		return err
	}

	return nil
}

// Decline drops the pending request of requesterID. Connections are never
// touched.
func (c *connectionService) Decline(ctx context.Context, targetID, requesterID string) error {
	requesterID, targetID, err := c.checkPair(ctx, requesterID, targetID)
	if err != nil {
		return err
	}

	if err = c.connectionRepository.RemovePendingRequest(ctx, targetID, requesterID); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("target", targetID).Str("requester", requesterID).Msg("decline failed")
		return err
	}

	return nil
}

// ListPending returns the ids of users waiting for userID's answer, oldest
// first.
func (c *connectionService) ListPending(ctx context.Context, userID string) ([]string, error) {
	return c.connectionRepository.ListPendingRequests(ctx, userID)
}

// ListConnections returns the public profiles of userID's connections.
// An unknown userID is store.ErrUserNotFound rather than an empty list.
func (c *connectionService) ListConnections(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	if _, err := c.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := c.connectionRepository.ListConnections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing connections: %w", err)
	}

	users, err := c.userRepository.FindUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading connected users: %w", err)
	}

	return c.projector.projectAll(ctx, users), nil
}

// checkPair validates and trims a (from, to) pair.
func (c *connectionService) checkPair(ctx context.Context, fromID, toID string) (string, string, error) {
	req := models.ConnectionRequest{From: strings.TrimSpace(fromID), To: strings.TrimSpace(toID)}
	if err := c.validator.Validate(ctx, req); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if req.From == req.To {
		return "", "", ErrSelfConnection
	}

	return req.From, req.To, nil
}
