// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAdminAccessDenied      = "auth.admin_access_denied"

	// Paintings
	KeyPaintingCreated  = "painting.created"
	KeyPaintingUpdated  = "painting.updated"
	KeyPaintingDeleted  = "painting.deleted"
	KeyPaintingNotFound = "painting.not_found"
	KeyPaintingSold     = "painting.sold"

	// Uploads
	KeyFileUploadFailed = "upload.failed"
	KeyFileTooLarge     = "upload.too_large"
	KeyFileTypeInvalid  = "upload.invalid_type"

	// Messages (contact / inquiry / offer)
	KeyMessageSent       = "message.sent"
	KeyMessageSendFailed = "message.send_failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
