package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/sigevents/staffops-backend-go/internal/config"
	"github.com/sigevents/staffops-backend-go/internal/domain/invoice"
	statsDomain "github.com/sigevents/staffops-backend-go/internal/domain/stats"
	appHTTP "github.com/sigevents/staffops-backend-go/internal/handler/http"
	"github.com/sigevents/staffops-backend-go/internal/pkg/database"
	"github.com/sigevents/staffops-backend-go/internal/pkg/jwt"
	"github.com/sigevents/staffops-backend-go/internal/pkg/oauth"
	"github.com/sigevents/staffops-backend-go/internal/repository/postgresql"
	authService "github.com/sigevents/staffops-backend-go/internal/service/auth"
	dashboardService "github.com/sigevents/staffops-backend-go/internal/service/dashboard"
	eventService "github.com/sigevents/staffops-backend-go/internal/service/event"
	invoiceService "github.com/sigevents/staffops-backend-go/internal/service/invoice"
	statsService "github.com/sigevents/staffops-backend-go/internal/service/stats"
	stepsService "github.com/sigevents/staffops-backend-go/internal/service/steps"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	recordRepo := postgresql.NewEventRecordRepository(db)

	datasets := statsDomain.DefaultDatasets(cfg.Staffing.Roster)
	rates := invoice.RoleRates{
		HeadWaiter: cfg.Staffing.HeadWaiterRate,
		Waiter:     cfg.Staffing.WaiterRate,
		Casual:     cfg.Staffing.CasualRate,
	}
	issuer := invoice.CompanyDetails{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	}
	banking := invoice.BankingDetails{
		BankName:      cfg.Company.BankName,
		AccountName:   cfg.Company.AccountName,
		AccountNumber: cfg.Company.AccountNumber,
		BranchCode:    cfg.Company.BranchCode,
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	statsSvc := statsService.NewStatsService(recordRepo, datasets, nil, logger)
	eventSvc := eventService.NewEventService(recordRepo, datasets[statsDomain.DatasetSignatureWaiters])
	invoiceSvc := invoiceService.NewInvoiceService(recordRepo, rates, issuer, banking)
	stepsSvc := stepsService.NewStepsService(recordRepo)
	dashboardSvc := dashboardService.NewDashboardService(statsSvc, stepsSvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	stepsHandler := appHTTP.NewStepsHandler(stepsSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	recordHandler := appHTTP.NewRecordHandler(recordRepo, datasets)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		statsHandler,
		eventHandler,
		invoiceHandler,
		stepsHandler,
		dashboardHandler,
		recordHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
