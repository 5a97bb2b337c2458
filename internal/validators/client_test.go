package validators

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clients-api/internal/dto"
	"github.com/BruksfildServices01/clients-api/internal/timezone"
)

func TestIsCPF(t *testing.T) {
	valid := []string{"12345678901", "00000000000"}
	invalid := []string{"", "1234567890", "123456789012", "123.456.789-0", "1234567890a", "１２３４５６７８９０１"}

	for _, s := range valid {
		assert.True(t, IsCPF(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsCPF(s), s)
	}
}

func TestIsNotFuture(t *testing.T) {
	today := timezone.Today()

	assert.True(t, IsNotFuture(today))
	assert.True(t, IsNotFuture(today.AddDate(-30, 0, 0)))
	assert.False(t, IsNotFuture(today.AddDate(0, 0, 1)))
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

func TestRegister_ClientDTO(t *testing.T) {
	v := newValidator()
	bd := dto.NewDate(1990, time.January, 1)

	ok := dto.ClientDTO{Name: "Ana", CPF: "12345678901", Income: 2500, BirthDate: &bd}
	require.NoError(t, v.Struct(ok))

	bad := dto.ClientDTO{CPF: "123", Children: -1}
	err := v.Struct(bad)
	require.Error(t, err)

	fields := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"name":      "required",
		"cpf":       "cpf",
		"children":  "gte",
		"birthDate": "required",
	}, fields)
}

func TestRegister_RejectsFutureBirthDate(t *testing.T) {
	v := newValidator()
	tomorrow := timezone.Today().AddDate(0, 0, 2)
	bd := dto.NewDate(tomorrow.Year(), tomorrow.Month(), tomorrow.Day())

	err := v.Struct(dto.ClientDTO{Name: "Ana", CPF: "12345678901", BirthDate: &bd})
	require.Error(t, err)

	ve := err.(validator.ValidationErrors)
	require.Len(t, ve, 1)
	assert.Equal(t, "birthDate", ve[0].Field())
	assert.Equal(t, "notfuture", ve[0].Tag())
}
