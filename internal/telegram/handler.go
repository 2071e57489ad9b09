package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const helpText = `Saya menjawab pertanyaan tentang dataset Olist.

Contoh pertanyaan:
- Ada kategori apa saja di dataset?
- Harga rata rata dari produk kategori furniture?
- Produk apa yang paling sering direview positif?
- Bandingkan performa seller di São Paulo dan Rio de Janeiro
- Apa produk terbaik menurut review?`

type Handler struct {
	bot *Bot
}

func NewHandler(bot *Bot) *Handler {
	return &Handler{bot: bot}
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg == nil || msg.Text == "" {
		return
	}

	h.bot.logger.Info("received message",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.Bool("is_command", msg.IsCommand()),
	)

	if msg.IsCommand() {
		h.handleCommand(msg)
		return
	}

	answer := h.bot.answers.Answer(ctx, msg.Text)
	if err := h.bot.Send(msg.Chat.ID, answer); err != nil {
		h.bot.logger.Error("failed to send answer", zap.Error(err))
	}
}

func (h *Handler) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.bot.Send(msg.Chat.ID, "Halo! Kirim pertanyaan Anda tentang dataset Olist.\n\n"+helpText)
	case "help":
		h.bot.Send(msg.Chat.ID, helpText)
	default:
		h.bot.Send(msg.Chat.ID, "Perintah tidak dikenal. Gunakan /help untuk bantuan.")
	}
}
