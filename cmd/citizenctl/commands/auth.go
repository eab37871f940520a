package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCommand(s *state) *cobra.Command {
	var email, passwordFile string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				v, err := prompt("Email: ")
				if err != nil {
					return err
				}
				email = v
			}
			password, err := readPassword(passwordFile)
			if err != nil {
				return err
			}

			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			res, err := s.app.Auth.Login(ctx, email, password)
			if err != nil {
				return userError(err, "Login failed")
			}
			name := strings.TrimSpace(res.FirstName + " " + res.LastName)
			if name == "" {
				name = res.Email
			}
			fmt.Fprintf(s.out, "Logged in as %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from file (- for stdin)")
	return cmd
}

func newLogoutCommand(s *state) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Auth.Logout(cmd.Context(), full); err != nil {
				return userError(err, "Logout failed")
			}
			fmt.Fprintln(s.out, "Logged out")
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "also forget viewed notifications")
	return cmd
}

func newWhoamiCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Check the saved session against the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			sess, err := s.app.Account.CheckAuth(ctx)
			if err != nil {
				return userError(err, "Session expired. Please log in again.")
			}
			fmt.Fprintf(s.out, "%s <%s>\n", sess.DisplayName(), sess.Email)
			if sess.UserID != "" {
				fmt.Fprintf(s.out, "user id: %s\n", sess.UserID)
			}
			return nil
		},
	}
}

// stdin общий буфер: email и пароль могут прийти из одного потока
var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword читает пароль из файла, из stdin или с терминала без эха
func readPassword(passwordFile string) (string, error) {
	switch passwordFile {
	case "":
	case "-":
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	default:
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("read password file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal, use --password-file")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
