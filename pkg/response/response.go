package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidData     = "The given data was invalid."
	MsgUnauthenticated = "Unauthenticated."
	MsgForbidden       = "Forbidden. Insufficient permissions."
	MsgNotFound        = "Not found."
	MsgServerError     = "Server Error."
	MsgTooManyRequests = "Too many requests."
)

// MessageBody is the minimal body every response carries.
type MessageBody struct {
	Message string `json:"message"`
}

// ValidationBody is the 422 body: a message plus field -> messages.
type ValidationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// JSON writes body with status. A zero status means 200.
func JSON(ctx *gin.Context, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, body)
}

func Message(ctx *gin.Context, status int, message string) {
	JSON(ctx, status, MessageBody{Message: message})
}

// Abort writes a message body and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, MessageBody{Message: message})
}

func Validation(ctx *gin.Context, errs map[string][]string) {
	if errs == nil {
		errs = map[string][]string{}
	}
	ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationBody{Message: MsgInvalidData, Errors: errs})
}

func Unauthenticated(ctx *gin.Context) { Abort(ctx, http.StatusUnauthorized, MsgUnauthenticated) }
func Forbidden(ctx *gin.Context)       { Abort(ctx, http.StatusForbidden, MsgForbidden) }
func NotFound(ctx *gin.Context)        { Abort(ctx, http.StatusNotFound, MsgNotFound) }
func ServerError(ctx *gin.Context)     { Abort(ctx, http.StatusInternalServerError, MsgServerError) }
