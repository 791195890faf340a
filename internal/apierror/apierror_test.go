package apierror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:  http.StatusUnprocessableEntity,
		KindReferential: http.StatusConflict,
		KindState:       http.StatusConflict,
		KindConflict:    http.StatusConflict,
		KindTransient:   http.StatusServiceUnavailable,
		KindNotFound:    http.StatusNotFound,
	}
	for kind, status := range cases {
		assert.Equal(t, status, (&Error{Kind: kind}).HTTPStatus())
	}
	assert.Equal(t, http.StatusInternalServerError, (&Error{Kind: Kind(99)}).HTTPStatus())
}

func TestIsKind(t *testing.T) {
	err := Referential("cliente X no existe")
	assert.True(t, IsKind(err, KindReferential))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(nil, KindReferential))
}

func TestConflictUnwrap(t *testing.T) {
	cause := assert.AnError
	err := Conflict("numero en uso", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "numero en uso", err.Error())
}
