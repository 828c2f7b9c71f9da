package apperrors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewSetsStatusFromKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NotFound("x").HTTPStatus)
	assert.Equal(t, http.StatusForbidden, Auth("x").HTTPStatus)
	assert.Equal(t, http.StatusConflict, New(KindConflict, "x").HTTPStatus)
}

func TestWrapDBError(t *testing.T) {
	notFound := WrapDBError(gorm.ErrRecordNotFound, "missing", "dup")
	assert.True(t, Is(notFound, KindNotFound))
	assert.Equal(t, "missing", MessageOf(notFound, ""))
	assert.True(t, errors.Is(notFound, gorm.ErrRecordNotFound))

	dup := WrapDBError(errors.Wrap(gorm.ErrDuplicatedKey, "insert"), "missing", "dup")
	assert.True(t, Is(dup, KindConflict))
	assert.Equal(t, "dup", MessageOf(dup, ""))

	other := WrapDBError(errors.New("disk full"), "missing", "dup")
	assert.Equal(t, KindPersistence, KindOf(other))

	already := Validation("bad")
	assert.Same(t, already, WrapDBError(already, "missing", "dup"))

	assert.Nil(t, WrapDBError(nil, "missing", "dup"))
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, Kind(""), KindOf(err))
	assert.Equal(t, "fallback", MessageOf(err, "fallback"))
}
