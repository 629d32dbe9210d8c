package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/showerbuddy/internal/db"
	"github.com/terraincognita07/showerbuddy/internal/security"
	"github.com/terraincognita07/showerbuddy/internal/services"
)

const temporaryPasswordLength = 12

// RunResetPasswordCommand replaces the caregiver's password with a random
// temporary one and prints it.
func RunResetPasswordCommand(opts db.Options, email string, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email is required")
	}

	return withAuthService(opts, func(auth *services.AuthService) error {
		user, exists, err := auth.CheckIfRegistered(normalizedEmail)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if !exists {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}

		temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		if err := auth.ChangePassword(user.GetID(), temporaryPassword); err != nil {
			return fmt.Errorf("update user password: %w", err)
		}

		fmt.Fprintln(out, "Password reset successful")
		fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
		return nil
	})
}

// RunCreateCaregiverCommand registers a caregiver with a random temporary
// password and prints it.
func RunCreateCaregiverCommand(opts db.Options, email string, telephone string, out io.Writer) error {
	return withAuthService(opts, func(auth *services.AuthService) error {
		temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}

		user, err := auth.Register(email, temporaryPassword, telephone)
		if err != nil {
			return fmt.Errorf("register caregiver: %w", err)
		}

		fmt.Fprintf(out, "Created %s\n", user)
		fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
		return nil
	})
}

func withAuthService(opts db.Options, run func(auth *services.AuthService) error) error {
	database, err := db.Open(opts)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.Close(database)
	}()

	return run(services.NewAuthService(db.NewUserRepository(database)))
}
