package cli

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/filekeeper/internal/protocol"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var successColor = color.New(color.FgGreen)
var errorColor = color.New(color.FgRed)

// printOutcome reports a request result to the user: the server's message
// when one came back, the transport error otherwise.
func printOutcome(resp *protocol.Response, err error) {
	if err != nil {
		if resp != nil && resp.Message != "" {
			errorColor.Println(resp.Message)
		} else {
			errorColor.Println(err.Error())
		}
		return
	}
	if resp.Message != "" {
		successColor.Println(resp.Message)
	}
}

// Register prompts the user for a username and password and attempts to
// create a new account. On success the server's token is installed on the
// client, so a fresh registration is already a logged-in session.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.api.Do(protocol.ActionRegister, protocol.Body{Username: userName, Password: password})
	printOutcome(resp, err)
	return err
}

// Login prompts the user for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.api.Do(protocol.ActionLogin, protocol.Body{Username: userName, Password: password})
	printOutcome(resp, err)
	return err
}

// Logout drops the session token. The server holds no session state, so
// there is nothing to tell it.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	successColor.Println("Logged out")
	return nil
}
