package entity

// Catalog lista de opciones por slug de enumeración (para selects del front).
func Catalog() map[string][]EnumOption {
	return map[string][]EnumOption{
		"customer-type":    customerTypes.options(),
		"lead-status":      leadStatuses.options(),
		"lead-source":      leadSources.options(),
		"industry-type":    industries.options(),
		"interaction-type": interactionTypes.options(),
		"sale-status":      saleStatuses.options(),
		"ticket-status":    ticketStatuses.options(),
		"task-status":      taskStatuses.options(),
		"task-priority":    taskPriorities.options(),
		"task-type":        taskTypes.options(),
	}
}
