package service

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

// statusPriority orders statuses for [models.SortByStatus]: the clients that
// need attention first.
var statusPriority = map[models.ClientStatus]int{
	models.StatusExpiringSoon: 1,
	models.StatusExpired:      2,
	models.StatusActive:       3,
}

// View filters and sorts the projected roster. It returns a fresh slice and
// never modifies projected.
func View(projected []models.ClientWithStatus, q models.Query) []models.ClientWithStatus {
	out := make([]models.ClientWithStatus, 0, len(projected))

	term := strings.ToLower(strings.TrimSpace(q.Search))
	digits := utils.DigitsOnly(term)

	for _, c := range projected {
		if !matchesFilter(c, q.Filter) {
			continue
		}
		if term != "" && !matchesSearch(c, term, digits) {
			continue
		}
		out = append(out, c)
	}

	sortClients(out, q.Sort)
	return out
}

func matchesFilter(c models.ClientWithStatus, filter models.FilterOption) bool {
	switch filter {
	case models.FilterActive:
		return c.Status == models.StatusActive
	case models.FilterExpired:
		return c.Status == models.StatusExpired
	case models.FilterExpiringSoon:
		return c.Status == models.StatusExpiringSoon
	default:
		return true
	}
}

// matchesSearch matches term against name or login, and the digits of term
// against the digits of the phone number.
func matchesSearch(c models.ClientWithStatus, term, digits string) bool {
	if strings.Contains(strings.ToLower(c.Nome), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Login), term) {
		return true
	}
	if digits == "" || c.Telefone == "" {
		return false
	}
	return strings.Contains(utils.DigitsOnly(c.Telefone), digits)
}

func sortClients(clients []models.ClientWithStatus, by models.SortOption) {
	switch by {
	case models.SortByDueDate:
		slices.SortStableFunc(clients, func(a, b models.ClientWithStatus) int {
			return a.Vencimento.Compare(b.Vencimento)
		})
	case models.SortByStatus:
		slices.SortStableFunc(clients, func(a, b models.ClientWithStatus) int {
			return statusPriority[a.Status] - statusPriority[b.Status]
		})
	case models.SortByName:
		// collators keep internal buffers and must not be shared
		col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
		slices.SortStableFunc(clients, func(a, b models.ClientWithStatus) int {
			return col.CompareString(a.Nome, b.Nome)
		})
	}
}
