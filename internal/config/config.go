package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries every environment-derived setting the service needs. It is
// loaded once in main and passed explicitly so the lifecycle usecases stay
// free of ambient reads.
type (
	Config struct {
		Store   Store
		Google  Google
		Mail    Mail
		Company Company
		HTTP    HTTP
	}

	// Store points at the three record-store collections.
	Store struct {
		OrdersSheetID string `env:"APPRAISAL_ORDERS_SHEET_ID"`
		PanelSheetID  string `env:"APPRAISAL_PANEL_SHEET_ID"`
		QuotesSheetID string `env:"APPRAISAL_QUOTES_SHEET_ID"`
	}

	// Google holds the OAuth refresh-token credentials for the Sheets API.
	// When unset the client falls back to application default credentials.
	Google struct {
		RefreshToken string `env:"GOOGLE_REFRESH_TOKEN"`
		ClientID     string `env:"GOOGLE_CLIENT_ID"`
		ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	}

	Mail struct {
		Host             string `env:"SMTP_HOST"`
		Port             int    `env:"SMTP_PORT" env-default:"587"`
		User             string `env:"SMTP_USER"`
		Password         string `env:"SMTP_PASSWORD"`
		SenderName       string `env:"SENDER_NAME" env-default:"Appraisal Order Desk"`
		MaxParallelSends int    `env:"MAIL_MAX_PARALLEL" env-default:"4"`
	}

	Company struct {
		Name  string `env:"COMPANY_NAME" env-default:"Appraisal Management"`
		Email string `env:"COMPANY_EMAIL"`
	}

	HTTP struct {
		Port int `env:"HTTP_PORT" env-default:"8080"`
	}
)

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// ClientPanelSheetID resolves a client-specific panel registered as
// CLIENT_PANEL_<CLIENT_ID>=<spreadsheet_id> (dashes become underscores).
// Empty means the client has no dedicated panel.
func ClientPanelSheetID(clientID string) string {
	if clientID == "" {
		return ""
	}
	key := "CLIENT_PANEL_" + strings.ReplaceAll(strings.ToUpper(clientID), "-", "_")
	return os.Getenv(key)
}
