package dto

import "strings"

// The API accepts the Portuguese status and type tokens used by the legacy
// clients alongside the canonical English ones. Internally everything is
// English; normalization happens here, once, on the way in.

var installmentStatusAliases = map[string]string{
	"pendente": "pending",
	"pago":     "paid",
}

var orderDecisionAliases = map[string]string{
	"aprovado":  "approved",
	"recusado":  "rejected",
	"rejeitado": "rejected",
}

var orderStatusAliases = map[string]string{
	"pendente":  "pending",
	"aprovado":  "approved",
	"recusado":  "rejected",
	"rejeitado": "rejected",
}

var contractTypeAliases = map[string]string{
	"negocio": "business",
	"negócio": "business",
	"venda":   "sale",
	"servico": "service",
	"serviço": "service",
}

// NormalizeInstallmentStatus maps a status token to the canonical English form
func NormalizeInstallmentStatus(status string) string {
	return normalize(status, installmentStatusAliases)
}

// NormalizeOrderDecision maps a decision token to the canonical English form
func NormalizeOrderDecision(decision string) string {
	return normalize(decision, orderDecisionAliases)
}

// NormalizeOrderStatus maps a status filter token to the canonical English form
func NormalizeOrderStatus(status string) string {
	return normalize(status, orderStatusAliases)
}

// NormalizeContractType maps a contract type token to the canonical English form
func NormalizeContractType(contractType string) string {
	return normalize(contractType, contractTypeAliases)
}

func normalize(token string, aliases map[string]string) string {
	lowered := strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := aliases[lowered]; ok {
		return canonical
	}
	return lowered
}
