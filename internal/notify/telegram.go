// Package notify delivers finished forecast reports to subscribers.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pharmascope/forecaster/models"
)

// TelegramNotifier pushes report summaries to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		logger: log.With().Str("component", "telegram_notifier").Logger(),
	}, nil
}

// SendReport sends a formatted report summary.
func (n *TelegramNotifier) SendReport(report models.ForecastReport) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatReport(report))

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}

	n.logger.Info().Str("disease", report.Disease).Msg("Report sent")
	return nil
}

// FormatReport renders a report as a plain-text summary message.
func FormatReport(report models.ForecastReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 Forecast: %s (%d years)\n", report.Disease, report.Horizon)
	fmt.Fprintf(&sb, "Market size: %.0f patients (95%% CI %.0f – %.0f)\n",
		report.MarketSize.Value,
		report.MarketSize.ConfidenceInterval.Lower,
		report.MarketSize.ConfidenceInterval.Upper)
	fmt.Fprintf(&sb, "Patient share: %.1f%% (95%% CI %.1f%% – %.1f%%)\n",
		report.PatientShare.Value*100,
		report.PatientShare.ConfidenceInterval.Lower*100,
		report.PatientShare.ConfidenceInterval.Upper*100)
	fmt.Fprintf(&sb, "Revenue: $%.0f (95%% CI $%.0f – $%.0f)\n",
		report.Revenue.Value,
		report.Revenue.ConfidenceInterval.Lower,
		report.Revenue.ConfidenceInterval.Upper)

	if len(report.MissingSources) > 0 {
		fmt.Fprintf(&sb, "⚠️ Degraded: missing %s\n", strings.Join(report.MissingSources, ", "))
	}

	return sb.String()
}
