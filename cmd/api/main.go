package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/wps-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/wps-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/sif"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/wps-backend-go/internal/repository/postgresql"
	payrollService "github.com/cmlabs-hris/wps-backend-go/internal/service/payroll"
	wageFileService "github.com/cmlabs-hris/wps-backend-go/internal/service/wagefile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	payrollRepo := postgresql.NewPayrollRepository(db)
	wageFileRepo := postgresql.NewWageFileRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	encoderCfg := sif.DefaultConfig()
	encoderCfg.BankCode = cfg.WPS.BankCode
	encoderCfg.CountryCode = cfg.WPS.CountryCode
	encoderCfg.AccountTypeCode = cfg.WPS.AccountTypeCode
	encoderCfg.RoutingTypeCode = cfg.WPS.RoutingTypeCode
	encoderCfg.FileExtension = cfg.WPS.FileExtension
	encoder := sif.NewEncoder(encoderCfg)

	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	wageFileSvc := wageFileService.NewWageFileService(payrollRepo, wageFileRepo, encoder, fileStorage)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	wageFileHandler := appHTTP.NewWageFileHandler(wageFileSvc)

	router := appHTTP.NewRouter(
		JWTService,
		payrollHandler,
		wageFileHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
