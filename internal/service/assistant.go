package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/models"
)

// Fallback texts of the assistant.
const (
	AssistantUnavailable     = "Serviço de IA indisponível. Chave de API não configurada."
	ReminderFailed           = "Não foi possível gerar a mensagem de renovação no momento."
	SummaryFailed            = "Não foi possível gerar o resumo do painel no momento."
	PasswordUnavailable      = "IA-indisponivel"
	PasswordGenerationFailed = "erro-ao-gerar"
)

const reminderPrompt = `Gere uma mensagem curta, amigável e profissional em português para lembrar um cliente sobre o vencimento de sua assinatura.
Cliente: %s
Data de Vencimento: %s

A mensagem deve ser concisa e clara. Inclua o nome do cliente e a data. Não adicione saudações como "Prezado" ou "Olá". Comece diretamente com o lembrete. Termine pedindo para entrar em contato para renovar.`

const summaryPrompt = `Aja como um analista de negócios. Analise os seguintes dados de uma carteira de clientes e gere um resumo conciso (2-3 frases) em português. Destaque o ponto mais importante (positivo ou negativo).
- Total de Clientes: %d
- Clientes Ativos: %d
- Clientes Vencidos: %d
- Clientes com Vencimento Próximo (próximos %d dias): %d

Exemplo de saída: "Com %d clientes, a saúde da carteira é boa, mas atenção aos %d clientes prestes a vencer para evitar um aumento na taxa de churn."`

const passwordPrompt = `Gere uma senha forte e segura com 12 caracteres. Deve incluir letras maiúsculas, minúsculas, números e símbolos. Responda apenas com a senha, sem qualquer texto adicional.`

type assistant struct {
	generator adapter.TextGenerator
	logger    *logger.Logger
}

// NewAssistant returns a [PanelAssistant] backed by generator. A nil
// generator makes every call answer with the "unavailable" text.
func NewAssistant(generator adapter.TextGenerator, logger *logger.Logger) PanelAssistant {
	return &assistant{generator: generator, logger: logger}
}

func (a *assistant) RenewalReminder(ctx context.Context, clientName string, due models.Date) string {
	return a.ask(ctx, "RenewalReminder", fmt.Sprintf(reminderPrompt, clientName, due.BR()), AssistantUnavailable, ReminderFailed)
}

func (a *assistant) DashboardSummary(ctx context.Context, stats models.DashboardStats) string {
	prompt := fmt.Sprintf(summaryPrompt,
		stats.Total, stats.Active, stats.Expired, DefaultExpirationThreshold, stats.ExpiringSoon,
		stats.Total, stats.ExpiringSoon)
	return a.ask(ctx, "DashboardSummary", prompt, AssistantUnavailable, SummaryFailed)
}

func (a *assistant) StrongPassword(ctx context.Context) string {
	return a.ask(ctx, "StrongPassword", passwordPrompt, PasswordUnavailable, PasswordGenerationFailed)
}

func (a *assistant) ask(ctx context.Context, op, prompt, unavailable, failed string) string {
	if a.generator == nil {
		return unavailable
	}

	text, err := a.generator.Generate(ctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrAssistantNoContent
	}
	if err != nil {
		a.logger.Err(err).Str("func", "assistant."+op).Msg("text generation failed")
		if errors.Is(err, adapter.ErrNotConfigured) {
			return unavailable
		}
		return failed
	}
	return strings.TrimSpace(text)
}
