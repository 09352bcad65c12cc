package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/logging"
)

// fail writes business errors through the code table and everything else
// as a logged 500.
func fail(c *gin.Context, logger logging.Logger, err error) {
	if httperr.Respond(c, err) {
		return
	}

	logger.Error(c.Request.Context(), "request failed",
		"path", c.FullPath(),
		"error", err,
	)
	httperr.Internal(c, "internal_error", "Something went wrong, please try again")
}

// bindJSON decodes the body and turns validation failures into inline
// field errors. The first failing field decides the error code.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return false
	}

	fields := make(map[string]string, len(verrs))
	code := ""
	for _, fe := range verrs {
		fc := fieldCode(fe)
		_, msg := httperr.FromBusiness(fc)
		fields[fe.Field()] = msg
		if code == "" {
			code = fc
		}
	}

	_, message := httperr.FromBusiness(code)
	httperr.WriteFields(c, http.StatusBadRequest, code, message, fields)
	return false
}

// fieldCode picks the business code of a failed field. Codes missing from
// the table fall back to invalid_request.
func fieldCode(fe validator.FieldError) string {
	var code string
	switch {
	case fe.Tag() == "phone10":
		code = "invalid_phone"
	case fe.Tag() == "looseemail", fe.Tag() == "email":
		code = "invalid_email"
	case fe.Tag() == "required":
		code = fe.Field() + "_required"
	case fe.Field() == "password":
		code = "weak_password"
	default:
		code = "invalid_" + fe.Field()
	}

	if !httperr.Known(code) {
		return "invalid_request"
	}
	return code
}
