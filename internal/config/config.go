package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	Staffing     StaffingConfig
	Company      CompanyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// StaffingConfig holds the signature waiter roster and the hourly rates
// applied per staffing role on invoices.
type StaffingConfig struct {
	Roster         []string
	HeadWaiterRate float64
	WaiterRate     float64
	CasualRate     float64
}

// CompanyConfig is the agency identity printed on invoices.
type CompanyConfig struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	BankName      string
	AccountName   string
	AccountNumber string
	BranchCode    string
}

// defaultRoster mirrors the signature waiter list the dashboards were
// built around. Override with STAFF_ROSTER.
var defaultRoster = []string{
	"Buhle", "Brilliant", "Edwin", "Howard", "Judah", "Kamogelo", "Karabo",
	"Mthulisi", "Noma", "Nozipho", "Sam", "Sharon", "Simangele", "Simon",
	"Skanyiso", "Thembie", "Vicky", "Zanele", "Zweli",
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffops"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Staffing configuration
	headRate, err := strconv.ParseFloat(getEnv("RATE_HEAD_WAITER", "150"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_HEAD_WAITER: %w", err)
	}
	waiterRate, err := strconv.ParseFloat(getEnv("RATE_WAITER", "120"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_WAITER: %w", err)
	}
	casualRate, err := strconv.ParseFloat(getEnv("RATE_CASUAL", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_CASUAL: %w", err)
	}

	roster := getEnvSlice("STAFF_ROSTER")
	if len(roster) == 0 {
		roster = defaultRoster
	}

	config.Staffing = StaffingConfig{
		Roster:         roster,
		HeadWaiterRate: headRate,
		WaiterRate:     waiterRate,
		CasualRate:     casualRate,
	}

	// Company configuration
	config.Company = CompanyConfig{
		Name:          getEnv("COMPANY_NAME", "Sibutha Projects"),
		Address:       getEnv("COMPANY_ADDRESS", ""),
		Phone:         getEnv("COMPANY_PHONE", ""),
		Email:         getEnv("COMPANY_EMAIL", ""),
		BankName:      getEnv("COMPANY_BANK_NAME", ""),
		AccountName:   getEnv("COMPANY_ACCOUNT_NAME", ""),
		AccountNumber: getEnv("COMPANY_ACCOUNT_NUMBER", ""),
		BranchCode:    getEnv("COMPANY_BRANCH_CODE", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.Staffing.Roster) == 0 {
		return fmt.Errorf("STAFF_ROSTER is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
