package models

// ClientStatus is the derived subscription state of a client.
type ClientStatus string

const (
	StatusActive       ClientStatus = "Ativo"
	StatusExpired      ClientStatus = "Vencido"
	StatusExpiringSoon ClientStatus = "Próximo Vencimento"
)

// Client is one subscription record of the roster.
type Client struct {
	// ID is assigned by the roster at creation time and never changes.
	ID string `json:"id"`

	Nome     string `json:"nome"`
	Login    string `json:"login"`
	Senha    string `json:"senha,omitempty"`
	Servidor string `json:"servidor"`

	// Vencimento is the subscription due date.
	Vencimento Date `json:"vencimento"`

	Telefone string `json:"telefone,omitempty"`
}

// ClientInput carries the operator-editable fields of a new client.
type ClientInput struct {
	Nome       string
	Login      string
	Senha      string
	Servidor   string
	Vencimento Date
	Telefone   string
}

// WithID builds a Client from the input and the given id.
func (in ClientInput) WithID(id string) Client {
	return Client{
		ID:         id,
		Nome:       in.Nome,
		Login:      in.Login,
		Senha:      in.Senha,
		Servidor:   in.Servidor,
		Vencimento: in.Vencimento,
		Telefone:   in.Telefone,
	}
}

// ClientWithStatus is a Client annotated with its derived status. It is
// recomputed on every read and never persisted.
type ClientWithStatus struct {
	Client

	Status ClientStatus `json:"status"`

	// DiasRestantes is nil when Status is StatusExpired.
	DiasRestantes *int `json:"diasRestantes"`
}

// DashboardStats aggregates the projected roster.
type DashboardStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiringSoon"`
}
