package playerid

import (
	dErrors "playerid/pkg/domain-errors"
)

// Sentinel errors, matched by code with errors.Is.
var (
	ErrInvalidIdentifier error = &dErrors.Error{Code: dErrors.CodeInvalidIdentifier, Message: "invalid identifier"}
	ErrInvalidUsername   error = &dErrors.Error{Code: dErrors.CodeInvalidUsername, Message: "invalid username"}
	ErrTransport         error = &dErrors.Error{Code: dErrors.CodeTransport, Message: "directory transport error"}
	ErrUnknown           error = &dErrors.Error{Code: dErrors.CodeUnknown, Message: "unknown"}
)
