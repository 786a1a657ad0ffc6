// Package main is the entry point for the Freight Ledger admin CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/freight-ledger/backend/config"
	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/application/usecase/company"
	"github.com/freight-ledger/backend/internal/domain/entity"
	"github.com/freight-ledger/backend/internal/infra/db"
	"github.com/freight-ledger/backend/internal/integration/adapters"
	"github.com/freight-ledger/backend/internal/integration/persistence"
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Freight Ledger administration commands",
	Long: `Administrative commands for the Freight Ledger backend.

These commands talk directly to the database and bypass the HTTP API,
so they can perform operations the API restricts, such as creating
super admin users.`,
	SilenceUsage: true,
}

func newCreateUserCmd() *cobra.Command {
	var email, name, password, role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user with the given role",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			ctx := context.Background()
			userRepo := persistence.NewUserRepository(database.DB())
			passwordService := adapters.NewPasswordService()

			if role != string(entity.RoleUser) && role != string(entity.RoleSuperAdmin) {
				return fmt.Errorf("unknown role %q", role)
			}
			if err := passwordService.ValidatePasswordStrength(password); err != nil {
				return err
			}

			exists, err := userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("a user with email %s already exists", email)
			}

			hash, err := passwordService.HashPassword(password)
			if err != nil {
				return err
			}

			user := entity.NewUser(email, name, hash, entity.Role(role))
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}

			fmt.Printf("Created %s user %s (%s)\n", user.Role, user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address of the new user")
	cmd.Flags().StringVar(&name, "name", "", "display name of the new user")
	cmd.Flags().StringVar(&password, "password", "", "password for the new user")
	cmd.Flags().StringVar(&role, "role", string(entity.RoleUser), "role (user or super_admin)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSetCreditCmd() *cobra.Command {
	var companyIDStr, userIDStr, amountStr string

	cmd := &cobra.Command{
		Use:   "set-credit",
		Short: "Override a company's cached credit balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := uuid.Parse(companyIDStr)
			if err != nil {
				return fmt.Errorf("invalid company ID: %w", err)
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			// Default to super admin scope so any company can be adjusted.
			scope := adapter.OwnerScope{SuperAdmin: true}
			if userIDStr != "" {
				userID, err := uuid.Parse(userIDStr)
				if err != nil {
					return fmt.Errorf("invalid user ID: %w", err)
				}
				scope = adapter.OwnerScope{UserID: userID}
			}

			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			companyRepo := persistence.NewCompanyRepository(database.DB())
			setCredit := company.NewSetCompanyCreditUseCase(companyRepo)

			output, err := setCredit.Execute(context.Background(), company.SetCompanyCreditInput{
				Scope:         scope,
				CompanyID:     companyID,
				CreditBalance: amount,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Set credit balance of %s to %s\n", output.Company.Name, output.Company.CreditBalance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&companyIDStr, "company", "", "company ID")
	cmd.Flags().StringVar(&userIDStr, "user-id", "", "restrict the lookup to this owner (default: super admin scope)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new credit balance")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func connect() (*db.Database, error) {
	cfg := config.Load()
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

func main() {
	_ = godotenv.Load()

	rootCmd.AddCommand(newCreateUserCmd())
	rootCmd.AddCommand(newSetCreditCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
