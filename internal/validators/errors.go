package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName               = errors.New("name is required")
	ErrInvalidUsername         = errors.New("username must be 1-64 characters without spaces")
	ErrInvalidEmail            = errors.New("email is not a valid address")
	ErrEmptyPassword           = errors.New("password is required")
	ErrPasswordTooLong         = errors.New("password must not exceed 72 bytes")
	ErrNoLoginIdentifier       = errors.New("email or username is required")
	ErrNoFieldsToUpdate        = errors.New("at least one field must be provided for update")
	ErrFieldTooLong            = errors.New("field exceeds maximum length")
	ErrInvalidWorkHistory      = errors.New("work history entry needs company and position")
	ErrInvalidWorkHistoryID    = errors.New("work history entry id is required")
	ErrUnknownWorkHistoryEvent = errors.New("work history action must be add or delete")
	ErrInvalidEducation        = errors.New("education entry needs a school")
	ErrInvalidEducationID      = errors.New("education entry id is required")
	ErrUnknownEducationEvent   = errors.New("education action must be add or delete")
	ErrInvalidAvatar           = errors.New("avatar reference is invalid")
	ErrEmptyUserID             = errors.New("user id is required")
)
