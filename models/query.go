package models

// FilterOption selects clients by status.
type FilterOption string

const (
	FilterAll          FilterOption = "Todos"
	FilterActive       FilterOption = "Ativos"
	FilterExpired      FilterOption = "Vencidos"
	FilterExpiringSoon FilterOption = "Próximo Vencimento"
)

// FilterOptions lists the filters in the order the dashboard cycles through them.
var FilterOptions = []FilterOption{FilterAll, FilterActive, FilterExpired, FilterExpiringSoon}

// SortOption selects the ordering of the visible roster.
type SortOption string

const (
	SortByName    SortOption = "nome"
	SortByDueDate SortOption = "vencimento"
	SortByStatus  SortOption = "status"
)

// SortOptions lists the sort orders in the order the dashboard cycles through them.
var SortOptions = []SortOption{SortByName, SortByDueDate, SortByStatus}

// Query is everything the operator controls about the visible roster.
type Query struct {
	Filter FilterOption
	Search string
	Sort   SortOption
}
