package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/auth"
	"github.com/frilo-app/frilo-api/chat"
	"github.com/frilo-app/frilo-api/external/geoinfo"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid token",
		1001: "invalid authorization format",
		1002: "invalid parameters",
		1003: "cannot parse request",
		1004: "invalid id",
		1005: "too many requests",
		1006: "permission denied",
		1007: "request body is too large",

		1100: auth.ErrOTPExpired.Error(),
		1101: auth.ErrOTPInvalid.Error(),
		1102: auth.ErrOTPBlocked.Error(),
		1103: auth.ErrOTPRateLimited.Error(),
		1104: auth.ErrPhoneNotVerified.Error(),
		1105: auth.ErrTermsNotAccepted.Error(),
		1106: auth.ErrInvalidCredentials.Error(),
		1107: auth.ErrGoogleAuthFailed.Error(),
		1108: auth.ErrInvalidResetToken.Error(),
		1109: store.ErrUserExists.Error(),
		1110: store.ErrUserNotFound.Error(),
		1111: auth.ErrMissingContactField.Error(),

		1200: store.ErrHelpPointNotFound.Error(),
		1201: store.ErrCategoryNotFound.Error(),
		1202: helppoint.ErrUnauthorized.Error(),
		1203: store.ErrAlreadyParticipant.Error(),
		1204: store.ErrNotParticipant.Error(),
		1205: helppoint.ErrOwnerCannotApply.Error(),
		1206: helppoint.ErrInvalidStatus.Error(),
		1207: helppoint.ErrInvalidParticipantStatus.Error(),

		1300: store.ErrAchievementNotFound.Error(),
		1301: achievement.ErrUnknownType.Error(),

		1400: store.ErrNotificationNotFound.Error(),
		1401: notification.ErrNoRecipients.Error(),
		1402: notification.ErrEmptyTitle.Error(),

		1500: store.ErrChatNotFound.Error(),
		1501: store.ErrMessageNotFound.Error(),
		1502: store.ErrReactionNotFound.Error(),
		1503: chat.ErrNotParticipant.Error(),
		1504: chat.ErrNotSender.Error(),
		1505: chat.ErrNotAdmin.Error(),
		1506: chat.ErrNotGroupChat.Error(),
		1507: chat.ErrTooFewParticipants.Error(),
		1508: chat.ErrEmptyMessage.Error(),
		1509: chat.ErrInvalidMessageType.Error(),
		1510: chat.ErrEmptyReaction.Error(),

		1600: objectstore.ErrTooLarge.Error(),
		1601: objectstore.ErrUnsupportedType.Error(),
		1602: "file is required",
		1603: objectstore.ErrInvalidDataURI.Error(),
		1604: objectstore.ErrForeignObject.Error(),

		1700: geoinfo.ErrNoResult.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidToken               = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidParameters          = errorJSON(1002)
	errorCannotParseRequest         = errorJSON(1003)
	errorInvalidID                  = errorJSON(1004)
	errorTooManyRequests            = errorJSON(1005)
	errorForbidden                  = errorJSON(1006)
	errorBodyTooLarge               = errorJSON(1007)

	errorFileTooLarge    = errorJSON(1600)
	errorUnsupportedFile = errorJSON(1601)
	errorFileRequired    = errorJSON(1602)
)

// errorTable maps service errors to the response sent to clients
var errorTable = []struct {
	err    error
	status int
	code   int64
}{
	{auth.ErrInvalidToken, http.StatusUnauthorized, 1000},
	{auth.ErrOTPExpired, http.StatusBadRequest, 1100},
	{auth.ErrOTPInvalid, http.StatusBadRequest, 1101},
	{auth.ErrOTPBlocked, http.StatusTooManyRequests, 1102},
	{auth.ErrOTPRateLimited, http.StatusTooManyRequests, 1103},
	{auth.ErrPhoneNotVerified, http.StatusUnauthorized, 1104},
	{auth.ErrTermsNotAccepted, http.StatusBadRequest, 1105},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, 1106},
	{auth.ErrGoogleAuthFailed, http.StatusUnauthorized, 1107},
	{auth.ErrInvalidResetToken, http.StatusUnauthorized, 1108},
	{store.ErrUserExists, http.StatusConflict, 1109},
	{store.ErrUserNotFound, http.StatusNotFound, 1110},
	{auth.ErrMissingContactField, http.StatusBadRequest, 1111},
	{store.ErrMissingIdentity, http.StatusBadRequest, 1111},

	{store.ErrHelpPointNotFound, http.StatusNotFound, 1200},
	{store.ErrCategoryNotFound, http.StatusNotFound, 1201},
	{helppoint.ErrUnauthorized, http.StatusForbidden, 1202},
	{store.ErrAlreadyParticipant, http.StatusConflict, 1203},
	{store.ErrNotParticipant, http.StatusNotFound, 1204},
	{helppoint.ErrOwnerCannotApply, http.StatusBadRequest, 1205},
	{helppoint.ErrInvalidStatus, http.StatusBadRequest, 1206},
	{helppoint.ErrInvalidParticipantStatus, http.StatusBadRequest, 1207},

	{store.ErrAchievementNotFound, http.StatusNotFound, 1300},
	{store.ErrUserAchievementNotFound, http.StatusNotFound, 1300},
	{achievement.ErrUnknownType, http.StatusBadRequest, 1301},

	{store.ErrNotificationNotFound, http.StatusNotFound, 1400},
	{notification.ErrNoRecipients, http.StatusBadRequest, 1401},
	{notification.ErrEmptyTitle, http.StatusBadRequest, 1402},

	{store.ErrChatNotFound, http.StatusNotFound, 1500},
	{store.ErrMessageNotFound, http.StatusNotFound, 1501},
	{store.ErrReactionNotFound, http.StatusNotFound, 1502},
	{chat.ErrNotParticipant, http.StatusForbidden, 1503},
	{chat.ErrNotSender, http.StatusForbidden, 1504},
	{chat.ErrNotAdmin, http.StatusForbidden, 1505},
	{chat.ErrNotGroupChat, http.StatusBadRequest, 1506},
	{chat.ErrTooFewParticipants, http.StatusBadRequest, 1507},
	{chat.ErrEmptyMessage, http.StatusBadRequest, 1508},
	{chat.ErrInvalidMessageType, http.StatusBadRequest, 1509},
	{chat.ErrEmptyReaction, http.StatusBadRequest, 1510},

	{objectstore.ErrTooLarge, http.StatusRequestEntityTooLarge, 1600},
	{objectstore.ErrUnsupportedType, http.StatusUnsupportedMediaType, 1601},
	{objectstore.ErrInvalidDataURI, http.StatusBadRequest, 1603},
	{objectstore.ErrForeignObject, http.StatusBadRequest, 1604},
	{geoinfo.ErrNoResult, http.StatusNotFound, 1700},
}

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	IsSuccess bool              `json:"isSuccess"`
	Code      int64             `json:"errorCode"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorFor finds the status and response of a service error. Unknown errors
// are internal errors.
func errorFor(err error) (int, ErrorResponse, bool) {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.status, errorJSON(e.code), true
		}
	}
	return http.StatusInternalServerError, errorInternalServer, false
}

// binding errors are reported under the names clients send
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// invalidParameters describes binding failures field by field
func invalidParameters(err error) ErrorResponse {
	resp := errorInvalidParameters

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return resp
	}

	resp.Errors = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		resp.Errors[lowerFirst(fe.Field())] = fieldMessage(fe)
	}
	return resp
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "e164":
		return "must be a phone number in international format"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
