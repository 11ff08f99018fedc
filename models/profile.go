// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DefaultAvatar is the media reference assigned to every new profile.
const DefaultAvatar = "default.jpg"

// Profile is the descriptive, user-editable part of an account.
// It is persisted as a single JSON document next to the user row, so it
// implements [driver.Valuer] and [sql.Scanner].
type Profile struct {
	Headline    string             `json:"headline"`
	Bio         string             `json:"bio"`
	Location    string             `json:"location"`
	Avatar      string             `json:"avatar"`
	WorkHistory []WorkHistoryEntry `json:"work_history"`
	Education   []EducationEntry   `json:"education"`
}

// WorkHistoryEntry is one job in the profile's work history.
// ID is generated by the server when the entry is added.
type WorkHistoryEntry struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Years    string `json:"years,omitempty"`
}

// EducationEntry is one school in the profile's education list.
// ID is generated by the server when the entry is added.
type EducationEntry struct {
	ID     string `json:"id"`
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
	Years  string `json:"years,omitempty"`
}

// NewProfile returns the profile every account starts with.
func NewProfile() Profile {
	return Profile{
		Avatar:      DefaultAvatar,
		WorkHistory: []WorkHistoryEntry{},
		Education:   []EducationEntry{},
	}
}

func (p *Profile) normalizeLists() {
	if p.WorkHistory == nil {
		p.WorkHistory = []WorkHistoryEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
}

// Value implements [driver.Valuer].
func (p Profile) Value() (driver.Value, error) {
	p.normalizeLists()

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error encoding profile: %w", err)
	}

	return string(data), nil
}

// Scan implements [sql.Scanner]. NULL leaves the receiver untouched.
func (p *Profile) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported profile column type %T", src)
	}

	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("error decoding profile: %w", err)
	}
	p.normalizeLists()

	return nil
}

// WorkHistoryAction selects what a [WorkHistoryChange] does.
type WorkHistoryAction string

const (
	WorkHistoryAdd    WorkHistoryAction = "add"
	WorkHistoryDelete WorkHistoryAction = "delete"
)

// WorkHistoryChange adds Entry or deletes the entry with ID.
// EducationChange uses the same actions.
type WorkHistoryChange struct {
	Action WorkHistoryAction `json:"action"`
	Entry  WorkHistoryEntry  `json:"entry,omitempty"`
	ID     string            `json:"id,omitempty"`
}

// EducationChange adds Entry or deletes the education entry with ID.
type EducationChange struct {
	Action WorkHistoryAction `json:"action"`
	Entry  EducationEntry    `json:"entry,omitempty"`
	ID     string            `json:"id,omitempty"`
}

// ProfileUpdate is a partial update of an account.
// Only non-nil fields are applied.
type ProfileUpdate struct {
	Username    *string            `json:"username,omitempty"`
	Name        *string            `json:"name,omitempty"`
	Headline    *string            `json:"headline,omitempty"`
	Bio         *string            `json:"bio,omitempty"`
	Location    *string            `json:"location,omitempty"`
	WorkHistory *WorkHistoryChange `json:"work_history,omitempty"`
	Education   *EducationChange   `json:"education,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil &&
		u.Name == nil &&
		u.Headline == nil &&
		u.Bio == nil &&
		u.Location == nil &&
		u.WorkHistory == nil &&
		u.Education == nil
}

// AvatarUpdate carries a new avatar media reference.
type AvatarUpdate struct {
	Avatar string `json:"avatar"`
}
