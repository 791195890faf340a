package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Simoleans/profit/internal/apierror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates a service error into the HTTP envelope. Domain
// errors carry their own status; anything else is logged and masked as 500.
func respondError(c *gin.Context, err error) {
	var domainErr *apierror.Error
	if errors.As(err, &domainErr) {
		if domainErr.Kind == apierror.KindValidation && domainErr.Fields != nil {
			c.JSON(domainErr.HTTPStatus(), &apierror.ValidationError{
				Detail: domainErr.Detail,
				Fields: domainErr.Fields,
			})
			return
		}
		c.JSON(domainErr.HTTPStatus(), apierror.New(domainErr.Detail))
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected service error")
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
}
