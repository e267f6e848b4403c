package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatListError(t *testing.T) {
	cause := errors.New("access denied")
	err := FormatListError("オブジェクト", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "オブジェクト一覧取得でエラー")
}
