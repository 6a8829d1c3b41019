package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/whatsapp"
)

type Config struct {
	TelegramToken  string
	WhatsAppNumber string
	Environment    string
	HandoffDelay   time.Duration
}

// Load carrega a configuração do .env (se existir) e das variáveis de
// ambiente, aplicando os padrões da demo.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Arquivo .env não encontrado, usando variáveis de ambiente")
	} else {
		log.Println("✅ Configuração carregada do .env")
	}

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
		Environment:    os.Getenv("ENV"),
		HandoffDelay:   booking.DefaultHandoffDelay,
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.WhatsAppNumber == "" {
		cfg.WhatsAppNumber = whatsapp.DefaultNumber
	}

	if raw := os.Getenv("HANDOFF_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("HANDOFF_DELAY_MS inválido: %q", raw)
		}
		cfg.HandoffDelay = time.Duration(ms) * time.Millisecond
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN é obrigatório e não foi definido")
	}

	return cfg, nil
}
