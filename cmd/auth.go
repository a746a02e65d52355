package main

import (
	"context"
	"fmt"

	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin runs the external identity handshake: opens the provider in the
// browser, waits for the loopback callback, and exchanges the one-time
// identifier for a session token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("starting identity handshake", "provider", r.config.Auth.ProviderURL)

	user, err := r.flow.Run(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	r.writePlain("✓ Giriş başarılı\n")
	r.writePlain("Hoş geldin, %s <%s>\n", user.Name, user.Email)
	if user.IsAdmin {
		r.writePlain("Yönetici yetkileri aktif\n")
	}

	return nil
}

// AuthStatus resolves the stored token into a profile and prints it.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	user := r.session.CheckSession(ctx)
	if user == nil {
		return r.writePlain("✗ Oturum yok. 'cizgihub auth login' ile giriş yapın.\n")
	}

	if useJSON {
		return r.writeJSON(user, pretty)
	}

	r.writePlain("✓ Oturum açık\n")
	r.writePlain("Kullanıcı: %s <%s>\n", user.Name, user.Email)
	if user.IsAdmin {
		r.writePlain("Rol: yönetici\n")
	}
	return nil
}

// AuthLogout invalidates the session server-side and clears the stored token.
// The local state is cleared even when the server call fails.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	// Resolve the token first so the server call carries it.
	r.session.CheckSession(ctx)
	r.session.Logout(ctx)
	return r.writePlain("✓ Çıkış yapıldı\n")
}
