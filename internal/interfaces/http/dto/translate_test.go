package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInstallmentStatus(t *testing.T) {
	assert.Equal(t, "paid", NormalizeInstallmentStatus("Pago"))
	assert.Equal(t, "pending", NormalizeInstallmentStatus("pendente"))
	assert.Equal(t, "paid", NormalizeInstallmentStatus("paid"))
	assert.Equal(t, "whatever", NormalizeInstallmentStatus(" WHATEVER "))
}

func TestNormalizeOrderDecision(t *testing.T) {
	assert.Equal(t, "approved", NormalizeOrderDecision("aprovado"))
	assert.Equal(t, "rejected", NormalizeOrderDecision("Recusado"))
	assert.Equal(t, "rejected", NormalizeOrderDecision("rejeitado"))
	assert.Equal(t, "rejected", NormalizeOrderDecision("rejected"))
}

func TestNormalizeOrderStatus(t *testing.T) {
	assert.Equal(t, "pending", NormalizeOrderStatus("Pendente"))
	assert.Equal(t, "approved", NormalizeOrderStatus("aprovado"))
	assert.Equal(t, "", NormalizeOrderStatus(""))
}

func TestNormalizeContractType(t *testing.T) {
	assert.Equal(t, "business", NormalizeContractType("negócio"))
	assert.Equal(t, "sale", NormalizeContractType("Venda"))
	assert.Equal(t, "service", NormalizeContractType("servico"))
	assert.Equal(t, "sale", NormalizeContractType("sale"))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, GetHTTPStatus("NOT_FOUND"))
	assert.Equal(t, 409, GetHTTPStatus("ALREADY_DECIDED"))
	assert.Equal(t, 409, GetHTTPStatus("ALREADY_EXISTS"))
	assert.Equal(t, 422, GetHTTPStatus("INVALID_STATE"))
	assert.Equal(t, 400, GetHTTPStatus("INVALID_TAX_ID"))
	assert.Equal(t, 500, GetHTTPStatus("SOMETHING_ELSE"))
}
