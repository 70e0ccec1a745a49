package admin

import "rebookz-admin/internal/apiclient"

// These carry the message shown to the admin, so they are validation errors
// rather than plain sentinels.
var (
	ErrNotSuperAdmin = &apiclient.Error{
		Kind:    apiclient.KindValidation,
		Message: "Only the super admin can change app settings",
	}
	ErrPasswordMismatch = &apiclient.Error{
		Kind:    apiclient.KindValidation,
		Message: "New passwords do not match",
	}
	ErrPasswordTooShort = &apiclient.Error{
		Kind:    apiclient.KindValidation,
		Message: "Password must be at least 6 characters",
	}
)
