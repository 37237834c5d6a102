// cmd/reset_password/main.go
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	// PostgreSQLドライバの登録
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	errInvalidEmail  = errors.New("メールアドレスの形式が正しくありません")
	errShortPassword = fmt.Errorf("パスワードは%d文字以上で入力してください", minPasswordLength)
	errUserNotFound  = errors.New("ユーザーが見つかりません")
)

type user struct {
	UserID      string
	Email       string
	DisplayName sql.NullString
	CreatedAt   time.Time
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := run(ctx, db, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Password reset failed: %v", err)
	}
}

// run は対話形式でユーザーを確認し、パスワードを更新します
func run(ctx context.Context, db *sql.DB, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	ask := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Fprintln(out, "=== Password Reset Admin Tool ===")

	email, err := ask("Email: ")
	if err != nil {
		return err
	}
	email, err = normalizeEmail(email)
	if err != nil {
		return err
	}

	u, err := findUser(ctx, db, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "User found: %s (display name: %s, created: %s)\n",
		u.Email, displayNameOf(u), u.CreatedAt.Format("2006-01-02"))

	password, err := ask(fmt.Sprintf("New password (min %d characters): ", minPasswordLength))
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	confirm, err := ask(fmt.Sprintf("Reset the password for %q? (yes/no): ", u.Email))
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := updatePassword(ctx, db, u.UserID, string(hash)); err != nil {
		return err
	}

	fmt.Fprintf(out, "Password reset for %s. Share the new password with the user securely.\n", u.Email)
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", errInvalidEmail
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errShortPassword
	}
	return nil
}

func displayNameOf(u *user) string {
	if u.DisplayName.Valid && u.DisplayName.String != "" {
		return u.DisplayName.String
	}
	return "N/A"
}

func findUser(ctx context.Context, db *sql.DB, email string) (*user, error) {
	var u user
	err := db.QueryRowContext(ctx,
		"SELECT user_id, email, display_name, created_at FROM users WHERE email = $1", email,
	).Scan(&u.UserID, &u.Email, &u.DisplayName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", errUserNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func updatePassword(ctx context.Context, db *sql.DB, userID, hash string) error {
	result, err := db.ExecContext(ctx,
		"UPDATE users SET password_hash = $1, updated_at = $2 WHERE user_id = $3",
		hash, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if rows != 1 {
		return errUserNotFound
	}
	return nil
}
