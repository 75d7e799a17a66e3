package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestStruct_Valido(t *testing.T) {
	in := dto.CustomerRequest{FirstName: "Ana", Type: entity.CustomerTypePerson, Email: "ana@crm.test"}
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_CamposConErrores(t *testing.T) {
	in := dto.CustomerRequest{Email: "no-es-email", Type: entity.CustomerType(7)}
	err := validation.Struct(in)
	require.Error(t, err)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Contains(t, de.Fields, "FirstName")
	assert.Contains(t, de.Fields, "Email")
	assert.Equal(t, []string{"'Type' has a value that is not allowed."}, de.Fields["Type"])
}

func TestStruct_LineasAnidadas(t *testing.T) {
	in := dto.SaleRequest{
		CustomerID: "c-1",
		Products:   []dto.SaleLineRequest{{ProductID: "p-1", Quantity: 0}},
	}
	err := validation.Struct(in)
	require.Error(t, err)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Contains(t, de.Fields, "Products[0].Quantity")
}
