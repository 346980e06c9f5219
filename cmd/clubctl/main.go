package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ClubBookingService/internal/config"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/coupon"
	couponsService "github.com/m04kA/SMC-ClubBookingService/internal/service/coupons"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

var (
	configPath string
	outputJSON bool
)

// operator identity, от имени которой CLI управляет каталогом
var operator = domain.Identity{Subject: "clubctl", Email: "clubctl@localhost", Role: domain.RoleAdmin}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var rootCmd = &cobra.Command{
	Use:          "clubctl",
	Short:        "Administrative CLI for the club booking service",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")

	rootCmd.AddCommand(couponsCmd())
	rootCmd.AddCommand(priceCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openCoupons подключается к базе и собирает сервис купонов
func openCoupons() (*couponsService.Service, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	svc := couponsService.NewService(couponRepo.NewRepository(db), systemClock{}, logger.Nop{})
	return svc, func() { _ = db.Close() }, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
