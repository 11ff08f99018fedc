// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/models"
)

// connectionRepository is the SQL implementation of [ConnectionRepository]
// over the "user_relations" edge table. The primary key (owner_id, peer_id)
// keeps every relation set a set and makes "pending and connected at the
// same time" unrepresentable.
type connectionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewConnectionRepository constructs a [ConnectionRepository] backed by db.
func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	logger.Debug().Msg("creating connection repository")
	return &connectionRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// AddPendingRequest inserts edge (target, requester, pending).
// Any existing edge between the two in that direction wins, which covers
// both "already pending" and "already connected".
func (r *connectionRepository) AddPendingRequest(ctx context.Context, requesterID, targetID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertRelationQuery(targetID, requesterID, models.RelationPending, r.now(), onConflictDoNothing)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		switch r.db.errorClassificator.Classify(err) {
		case ForeignKeyViolation, InvalidInput:
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*connectionRepository.AddPendingRequest").
			Str("requester_id", requesterID).Str("target_id", targetID).
			Msg("error inserting pending request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// AcceptPendingRequest promotes (target, requester, pending) to connected
// and upserts the twin edge (requester, target, connected) in one
// transaction. The upsert also overwrites a pending request the target may
// have sent the requester in the meantime.
//
// The conditional UPDATE is the only check: two concurrent accepts of the
// same request serialize on it and the second one finds no pending row.
func (r *connectionRepository) AcceptPendingRequest(ctx context.Context, targetID, requesterID string) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*connectionRepository.AcceptPendingRequest").
		Str("target_id", targetID).
		Str("requester_id", requesterID).
		Logger()

	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		now := r.now()

		query, args, err := r.db.promotePendingQuery(targetID, requesterID, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if r.db.errorClassificator.Classify(err) == InvalidInput {
			return ErrPendingRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		promoted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if promoted == 0 {
			return ErrPendingRequestNotFound
		}

		query, args, err = r.db.insertRelationQuery(requesterID, targetID, models.RelationConnected, now, onConflictSetConnected)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("pending request was not accepted")
		return err
	}

	log.Debug().Msg("pending request accepted")
	return nil
}

// RemovePendingRequest deletes (target, requester, pending). Connections
// are never touched.
func (r *connectionRepository) RemovePendingRequest(ctx context.Context, targetID, requesterID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deletePendingQuery(targetID, requesterID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if r.db.errorClassificator.Classify(err) == InvalidInput {
		return ErrPendingRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.RemovePendingRequest").Msg("error deleting pending request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if removed == 0 {
		return ErrPendingRequestNotFound
	}

	return nil
}

// ListPendingRequests returns the ids of users waiting for userID's answer,
// oldest request first.
func (r *connectionRepository) ListPendingRequests(ctx context.Context, userID string) ([]string, error) {
	return r.listPeers(ctx, "*connectionRepository.ListPendingRequests", userID, models.RelationPending)
}

// ListConnections returns the ids of userID's connections in the order
// they were established.
func (r *connectionRepository) ListConnections(ctx context.Context, userID string) ([]string, error) {
	return r.listPeers(ctx, "*connectionRepository.ListConnections", userID, models.RelationConnected)
}

func (r *connectionRepository) listPeers(ctx context.Context, funcName, ownerID string, state models.RelationState) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectPeersQuery(ownerID, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if r.db.errorClassificator.Classify(err) == InvalidInput {
		return make([]string, 0), nil
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	peers := make([]string, 0)
	for rows.Next() {
		var peerID string
		if err = rows.Scan(&peerID); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning peer id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		peers = append(peers, peerID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return peers, nil
}
