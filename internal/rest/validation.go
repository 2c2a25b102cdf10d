package rest

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pratikw008/blog-rest-api/domain"
)

func init() {
	// report violations under their JSON names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	}
}

// bindJSON decodes and validates the body into obj. On failure it records a
// *domain.ValidationError on c and returns false.
func bindJSON(c *gin.Context, obj any, messages map[string]string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	_ = c.Error(toValidationError(err, messages))
	return false
}

func toValidationError(err error, messages map[string]string) *domain.ValidationError {
	verr := &domain.ValidationError{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("body", "malformed request body: "+err.Error())
		return verr
	}

	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			verr.Add(fe.Field(), msg)
			continue
		}
		verr.Add(fe.Field(), defaultMessage(fe))
	}
	return verr
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return "size must be at least " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

// queryInt parses an integer query parameter, falling back to def when it is absent.
func queryInt(c *gin.Context, key string, def int, verr *domain.ValidationError) int {
	s := c.Query(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		verr.Add(key, "must be an integer")
		return def
	}
	return n
}

// pathID parses an int64 path parameter. Non-numeric ids are reported as not found.
func pathID(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil {
		_ = c.Error(domain.ErrNotFound)
		return 0, false
	}
	return id, true
}
