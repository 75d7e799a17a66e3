package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
)

func TestSuccess_MensajePorDefecto(t *testing.T) {
	r := dto.Success(42)
	assert.True(t, r.Success)
	assert.Equal(t, "Operation completed successfully", r.Message)
	assert.Equal(t, 42, r.Data)

	r = dto.Success(42, "Customer created successfully")
	assert.Equal(t, "Customer created successfully", r.Message)
}

func TestEmpty_SinDatos(t *testing.T) {
	out, err := json.Marshal(dto.Empty())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"No content"}`, string(out))
}

func TestError_FormaDelSobre(t *testing.T) {
	out, err := json.Marshal(dto.ErrorWithDetails("Failed", "boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Failed","errorDetails":"boom"}`, string(out))

	out, err = json.Marshal(dto.Error("Failed"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Failed"}`, string(out))
}

func TestSuccess_ListaVaciaSeSerializaComoArreglo(t *testing.T) {
	out, err := json.Marshal(dto.Success([]string{}, "Customers retrieved successfully"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Customers retrieved successfully","data":[]}`, string(out))

	out, err = json.Marshal(dto.Success(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Operation completed successfully","data":false}`, string(out))
}
