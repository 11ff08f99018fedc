package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-linkup/models"
)

const (
	usersTable     = "users"
	relationsTable = "user_relations"
)

var userColumns = []string{
	"id",
	"name",
	"username",
	"email",
	"password_hash",
	"profile",
	"created_at",
	"updated_at",
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Profile, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (db *DB) insertUserQuery(u models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Username, u.Email, u.PasswordHash, u.Profile, u.CreatedAt, u.UpdatedAt).
		ToSql()
}

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder.Select(userColumns...).From(usersTable)
}

func (db *DB) selectUserWhere(pred any) (string, []any, error) {
	return db.selectUsers().Where(pred).Limit(1).ToSql()
}

func (db *DB) selectUserForUpdateQuery(id string) (string, []any, error) {
	return db.forUpdate(db.selectUsers().Where(sq.Eq{"id": id})).ToSql()
}

func (db *DB) selectCollisionQuery(username, email string) (string, []any, error) {
	return db.builder.
		Select("username", "email").
		From(usersTable).
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		ToSql()
}

func (db *DB) selectUsersByIDsQuery(ids []string) (string, []any, error) {
	return db.selectUsers().
		Where(sq.Eq{"id": ids}).
		OrderBy("created_at", "id").
		ToSql()
}

func (db *DB) listUsersQuery() (string, []any, error) {
	return db.selectUsers().OrderBy("created_at", "id").ToSql()
}

func (db *DB) updateUserQuery(u models.User) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("name", u.Name).
		Set("username", u.Username).
		Set("profile", u.Profile).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
}

// insertRelationQuery builds the insert of edge (owner, peer). onConflict
// decides what happens when the edge already exists.
func (db *DB) insertRelationQuery(ownerID, peerID string, state models.RelationState, now time.Time, onConflict string) (string, []any, error) {
	return db.builder.
		Insert(relationsTable).
		Columns("owner_id", "peer_id", "state", "created_at", "updated_at").
		Values(ownerID, peerID, string(state), now, now).
		Suffix(onConflict).
		ToSql()
}

const (
	onConflictDoNothing    = "ON CONFLICT (owner_id, peer_id) DO NOTHING"
	onConflictSetConnected = "ON CONFLICT (owner_id, peer_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at"
)

func (db *DB) promotePendingQuery(ownerID, peerID string, now time.Time) (string, []any, error) {
	return db.builder.
		Update(relationsTable).
		Set("state", string(models.RelationConnected)).
		Set("updated_at", now).
		Where(sq.Eq{
			"owner_id": ownerID,
			"peer_id":  peerID,
			"state":    string(models.RelationPending),
		}).
		ToSql()
}

func (db *DB) deletePendingQuery(ownerID, peerID string) (string, []any, error) {
	return db.builder.
		Delete(relationsTable).
		Where(sq.Eq{
			"owner_id": ownerID,
			"peer_id":  peerID,
			"state":    string(models.RelationPending),
		}).
		ToSql()
}

func (db *DB) selectPeersQuery(ownerID string, state models.RelationState) (string, []any, error) {
	return db.builder.
		Select("peer_id").
		From(relationsTable).
		Where(sq.Eq{"owner_id": ownerID, "state": string(state)}).
		OrderBy("created_at", "peer_id").
		ToSql()
}
