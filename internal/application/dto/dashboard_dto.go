package dto

import "github.com/shopspring/decimal"

// DashboardSummary respuesta de GET /api/dashboard/summary.
type DashboardSummary struct {
	LeadsByStatus []StatusCount `json:"leadsByStatus"`
	OpenTickets   int           `json:"openTickets"`
	TasksDueToday int           `json:"tasksDueToday"`

	// Ventas del mes en curso (día 1 a hoy)
	MonthlySalesCount  int             `json:"monthlySalesCount"`
	MonthlySalesAmount decimal.Decimal `json:"monthlySalesAmount" swaggertype:"string"`

	InteractionsLast7Days int `json:"interactionsLast7Days"`

	// ej: "October 2026"
	PeriodLabel string `json:"periodLabel"`
}

// StatusCount cantidad por estado; aparecen todos los estados, también los de cero.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
