package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pulsedash/pulsedash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for a name, email, and password and attempts to create a
// new account. On success the new identity is printed; the user still has
// to log in explicitly, as on the original dashboard. The password bytes
// are wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.SignUp(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s (%s). You can now log in.\n", user.Name, user.Email)
	return nil
}

// Login prompts for credentials, authenticates against the server, and on
// success stores the identity in the session holder so it survives
// restarts. The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	if err := a.session.Login(user); err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout clears the session holder and removes the persisted identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the currently held identity, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}
