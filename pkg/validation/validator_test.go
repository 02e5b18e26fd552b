package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Password             string   `json:"password"`
	PasswordConfirmation string   `json:"password_confirmation" binding:"eqfield=Password"`
	Roles                []string `json:"roles"`
	Kind                 string   `json:"kind" binding:"omitempty,oneof=a b"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signup{Password: "x", PasswordConfirmation: "y", Kind: "c"})
	require.Error(t, err)

	assert.Equal(t, map[string][]string{
		"password_confirmation": {"must match password"},
		"kind":                  {"must be one of: a, b"},
	}, ToDetails(err))
}

func TestToDetails_DecodeErrors(t *testing.T) {
	var s signup
	err := json.Unmarshal([]byte(`{"roles":"client"}`), &s)
	require.Error(t, err)
	assert.Equal(t, map[string][]string{"roles": {"must be an array"}}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"password":`), &s)
	require.Error(t, err)
	assert.Equal(t, map[string][]string{"payload": {"invalid json"}}, ToDetails(err))

	err = json.Unmarshal([]byte(`{bad`), &s)
	assert.Equal(t, map[string][]string{"payload": {"invalid json"}}, ToDetails(err))

	assert.Equal(t, map[string][]string{"payload": {"invalid payload"}}, ToDetails(errors.New("other")))
	assert.Nil(t, ToDetails(nil))
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "password_confirmation", toSnake("PasswordConfirmation"))
	assert.Equal(t, "email", toSnake("email"))
}
