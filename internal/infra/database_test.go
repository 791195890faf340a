package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGormConfigTraduceErrores(t *testing.T) {
	cfg := gormConfig()

	// Services depend on gorm.ErrDuplicatedKey for the numbering retry and
	// the duplicate co_ven / rif checks; driver errors must be translated.
	assert.True(t, cfg.TranslateError)
	assert.NotNil(t, cfg.Logger)
}
