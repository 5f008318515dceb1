package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errMissing  = New("missing")
	errConflict = New("conflict")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errConflict, "insert favorite")

	assert.True(t, IsAny(wrapped, errMissing, errConflict))
	assert.False(t, IsAny(wrapped, errMissing))
	assert.False(t, IsAny(wrapped))
	assert.False(t, IsAny(nil, errMissing))
}

func TestWrapKeepsCauseAndStack(t *testing.T) {
	err := Wrapf(errMissing, "planet %d", 5)

	assert.True(t, Is(err, errMissing))
	assert.Equal(t, "planet 5: missing", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
	assert.NoError(t, Wrap(nil, "ignored"))
}
