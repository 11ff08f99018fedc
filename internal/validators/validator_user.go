package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-linkup/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName        = "name"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldLoginID     = "login_id"
	FieldHeadline    = "headline"
	FieldBio         = "bio"
	FieldLocation    = "location"
	FieldWorkHistory = "work_history"
	FieldEducation   = "education"
	FieldAvatar      = "avatar"
	FieldFrom        = "from"
	FieldTo          = "to"
)

const (
	maxUsernameLen = 64
	maxNameLen     = 128
	maxShortText   = 256
	maxBioLen      = 4096
	maxAvatarLen   = 512
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// UserValidator validates the account, profile and connection request
// models. Both value and pointer forms are accepted.
type UserValidator struct{}

// NewUserValidator returns a [UserValidator] as a [Validator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.ProfileUpdate
//   - models.AvatarUpdate
//   - models.ConnectionRequest
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)
	case models.AvatarUpdate:
		return v.validateAvatarUpdate(value, fields...)
	case *models.AvatarUpdate:
		return v.validateAvatarUpdate(*value, fields...)
	case models.ConnectionRequest:
		return v.validateConnectionRequest(value, fields...)
	case *models.ConnectionRequest:
		return v.validateConnectionRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = validateName(req.Name)
		case FieldUsername:
			err = validateUsername(req.Username)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginID:
			if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Username) == "" {
				return ErrNoLoginIdentifier
			}
		case FieldPassword:
			// length is not checked on login: a too long password simply fails
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldName, FieldHeadline, FieldBio, FieldLocation, FieldWorkHistory, FieldEducation}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			if update.Username != nil {
				err = validateUsername(*update.Username)
			}
		case FieldName:
			if update.Name != nil {
				err = validateName(*update.Name)
			}
		case FieldHeadline:
			err = validateOptionalText(update.Headline, maxShortText)
		case FieldBio:
			err = validateOptionalText(update.Bio, maxBioLen)
		case FieldLocation:
			err = validateOptionalText(update.Location, maxShortText)
		case FieldWorkHistory:
			if update.WorkHistory != nil {
				err = validateWorkHistoryChange(*update.WorkHistory)
			}
		case FieldEducation:
			if update.Education != nil {
				err = validateEducationChange(*update.Education)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateAvatarUpdate(update models.AvatarUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAvatar}
	}

	for _, f := range fields {
		switch f {
		case FieldAvatar:
			ref := strings.TrimSpace(update.Avatar)
			if ref == "" || len(ref) > maxAvatarLen || strings.Contains(ref, "..") || strings.ContainsFunc(ref, unicode.IsSpace) {
				return ErrInvalidAvatar
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateConnectionRequest(req models.ConnectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFrom, FieldTo}
	}

	for _, f := range fields {
		switch f {
		case FieldFrom:
			if strings.TrimSpace(req.From) == "" {
				return ErrEmptyUserID
			}
		case FieldTo:
			if strings.TrimSpace(req.To) == "" {
				return ErrEmptyUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLen {
		return ErrFieldTooLong
	}
	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > maxUsernameLen || strings.ContainsFunc(username, unicode.IsSpace) {
		return ErrInvalidUsername
	}
	return nil
}

// validateEmail accepts a bare address only; "Name <a@b>" is rejected.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validateOptionalText(value *string, limit int) error {
	if value != nil && len(*value) > limit {
		return ErrFieldTooLong
	}
	return nil
}

func validateWorkHistoryChange(change models.WorkHistoryChange) error {
	switch change.Action {
	case models.WorkHistoryAdd:
		if strings.TrimSpace(change.Entry.Company) == "" || strings.TrimSpace(change.Entry.Position) == "" {
			return ErrInvalidWorkHistory
		}
		if len(change.Entry.Company) > maxShortText || len(change.Entry.Position) > maxShortText || len(change.Entry.Years) > maxShortText {
			return ErrFieldTooLong
		}
	case models.WorkHistoryDelete:
		if strings.TrimSpace(change.ID) == "" {
			return ErrInvalidWorkHistoryID
		}
	default:
		return ErrUnknownWorkHistoryEvent
	}
	return nil
}

func validateEducationChange(change models.EducationChange) error {
	switch change.Action {
	case models.WorkHistoryAdd:
		if strings.TrimSpace(change.Entry.School) == "" {
			return ErrInvalidEducation
		}
		for _, s := range []string{change.Entry.School, change.Entry.Degree, change.Entry.Field, change.Entry.Years} {
			if len(s) > maxShortText {
				return ErrFieldTooLong
			}
		}
	case models.WorkHistoryDelete:
		if strings.TrimSpace(change.ID) == "" {
			return ErrInvalidEducationID
		}
	default:
		return ErrUnknownEducationEvent
	}
	return nil
}
