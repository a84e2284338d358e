package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cinepass-cli/model"
	"cinepass-cli/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Run: func(cmd *cobra.Command, args []string) {
		email, password, err := promptCredentials()
		if err != nil {
			fail(err)
		}

		client := newClient()
		res, err := client.Login(context.Background(), model.Credentials{
			Email:    email,
			Password: password,
		})
		if err != nil {
			fail(err)
		}

		err = store.SaveSession(store.Session{
			Token: res.Token,
			User:  model.User{Email: email},
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Signed in as %s\n", email)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Run: func(cmd *cobra.Command, args []string) {
		email, password, err := promptCredentials()
		if err != nil {
			fail(err)
		}
		firstName, _ := promptOptional("First name")
		lastName, _ := promptOptional("Last name")

		client := newClient()
		res, err := client.Register(context.Background(), model.RegisterData{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
		})
		if err != nil {
			fail(err)
		}

		err = store.SaveSession(store.Session{Token: res.Token, User: res.User})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Account created for %s\n", email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		if err := store.ClearSession(); err != nil {
			fail(err)
		}
		fmt.Println("Signed out.")
	},
}

func promptCredentials() (string, string, error) {
	emailPrompt := promptui.Prompt{
		Label: "Email",
		Validate: func(input string) error {
			if !strings.Contains(input, "@") {
				return errors.New("enter a valid email address")
			}
			return nil
		},
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return "", "", err
	}

	passwordPrompt := promptui.Prompt{
		Label: "Password",
		Mask:  '•',
		Validate: func(input string) error {
			if len(input) < 8 {
				return errors.New("password must be at least 8 characters")
			}
			return nil
		},
	}
	password, err := passwordPrompt.Run()
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(email), password, nil
}

func promptOptional(label string) (string, error) {
	prompt := promptui.Prompt{Label: fmt.Sprintf("%s (optional)", label)}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
