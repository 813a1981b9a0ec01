package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to PulseDash CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if u := a.session.Current(); u != nil {
		log.Printf("Restored session for %s", u.Email)
	}

	for {
		fmt.Printf("pdash %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: dashboard, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: signup, login, dashboard, exit")
			}
		case "signup":
			err = a.SignUp(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "dashboard":
			err = a.Dashboard(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			log.Printf("%s failed: %s", cmd, err.Error())
		}
	}
}
