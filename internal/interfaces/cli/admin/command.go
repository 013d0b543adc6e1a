// Package admin implements operator commands that bypass the HTTP surface.
package admin

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	userusecases "adminkit/internal/application/user/usecases"
	"adminkit/internal/infrastructure/auth"
	"adminkit/internal/infrastructure/config"
	"adminkit/internal/infrastructure/database"
	"adminkit/internal/infrastructure/repository"
	"adminkit/internal/shared/logger"
)

var (
	env       string
	firstName string
	lastName  string
	username  string
	email     string
	gender    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
		Long:  `Operator commands that work directly against the database.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateUserCommand())

	return cmd
}

func newCreateUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		Long:  `Create a user account directly, prompting for the password on the terminal.`,
		RunE:  runCreateUser,
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male, female, other)")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	password, err := promptPassword()
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	userRepo := repository.NewUserRepository(db, log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	createUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := createUC.Execute(ctx, userusecases.CreateUserCommand{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Password:  password,
		Gender:    gender,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("created user %q (id %d)\n", created.Username, created.ID)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return string(password), nil
}
