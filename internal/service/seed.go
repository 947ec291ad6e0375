package service

import "github.com/MKhiriev/go-client-panel/models"

// SeedSnapshot is the demo roster a first run starts with. Due dates are
// relative to today so that every status is represented.
func SeedSnapshot(today models.Date) models.Snapshot {
	return models.Snapshot{
		Clients: []models.Client{
			{ID: "1", Nome: "João Silva", Login: "joao1", Senha: "123", Servidor: "Servidor A", Vencimento: today.AddDays(30), Telefone: "(11) 99999-8888"},
			{ID: "2", Nome: "Maria Oliveira", Login: "maria2", Senha: "abc", Servidor: "Servidor B", Vencimento: today.AddDays(-5), Telefone: "(21) 98888-7777"},
			{ID: "3", Nome: "Pedro Almeida", Login: "pedro3", Senha: "def", Servidor: "Servidor A", Vencimento: today.AddDays(2)},
			{ID: "4", Nome: "Ana Costa", Login: "ana4", Senha: "ghi", Servidor: "Servidor C", Vencimento: today.AddDays(90), Telefone: "(31) 97777-6666"},
			{ID: "5", Nome: "Lucas Pereira", Login: "lucas5", Senha: "jkl", Servidor: "Servidor B", Vencimento: today.AddDays(6)},
		},
		History: []models.HistoryEntry{},
	}
}
