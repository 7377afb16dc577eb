package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

func TestSignupNormalizesEmailAndGrantsUserPermission(t *testing.T) {
	f := newFixture(t)

	user, token, err := f.auth.Signup(context.Background(), "Wes", "WES@Example.COM", "secret123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Email != "wes@example.com" {
		t.Errorf("email not lowercased: %q", user.Email)
	}
	if len(user.Permissions) != 1 || user.Permissions[0] != model.PermissionUser {
		t.Errorf("permissions = %v, want exactly [USER]", user.Permissions)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if token == "" {
		t.Error("no session token issued")
	}

	// the issued token resolves straight back to the new user
	userID, _, err := f.auth.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify fresh token: %v", err)
	}
	if userID != user.ID {
		t.Errorf("token resolves to %s, want %s", userID, user.ID)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "first", "dup@example.com")

	_, _, err := f.auth.Signup(context.Background(), "second", "DUP@example.com", "secret123")
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("duplicate signup err = %v, want ErrValidation", err)
	}
}

func TestSigninFailures(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "wes", "wes@example.com")

	if _, _, err := f.auth.Signin(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("unknown email err = %v, want ErrNotFound", err)
	}
	if _, _, err := f.auth.Signin(context.Background(), "wes@example.com", "wrong"); !errors.Is(err, service.ErrValidation) {
		t.Errorf("wrong password err = %v, want ErrValidation", err)
	}
}

func TestSigninIssuesFreshToken(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "wes", "wes@example.com")

	user, token, err := f.auth.Signin(context.Background(), "WES@example.com", "secret123")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if user.Email != "wes@example.com" {
		t.Errorf("unexpected user %q", user.Email)
	}
	if _, _, err := f.auth.Verify(context.Background(), token); err != nil {
		t.Errorf("verify signin token: %v", err)
	}
}

func TestSignoutRevokesSession(t *testing.T) {
	f := newFixture(t)

	_, token, err := f.auth.Signup(context.Background(), "wes", "wes@example.com", "secret123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, tokenID, err := f.auth.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if err := f.auth.Signout(context.Background(), tokenID); err != nil {
		t.Fatalf("signout: %v", err)
	}

	if _, _, err := f.auth.Verify(context.Background(), token); !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("verify after signout err = %v, want ErrNotAuthenticated", err)
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	f := newFixture(t)

	if _, _, err := f.auth.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("garbage token err = %v, want ErrNotAuthenticated", err)
	}
}

var resetTokenPattern = regexp.MustCompile(`resetToken=([0-9a-f]{40})`)

func requestResetToken(t *testing.T, f *fixture, email string) string {
	t.Helper()

	if err := f.auth.RequestReset(context.Background(), email); err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if len(f.mail.sent) == 0 {
		t.Fatal("no reset mail sent")
	}
	match := resetTokenPattern.FindStringSubmatch(f.mail.sent[len(f.mail.sent)-1].html)
	if match == nil {
		t.Fatalf("no reset token in mail body: %q", f.mail.sent[len(f.mail.sent)-1].html)
	}
	return match[1]
}

func TestPasswordResetRoundTrip(t *testing.T) {
	f := newFixture(t)
	user := f.signup(t, "wes", "wes@example.com")

	token := requestResetToken(t, f, "wes@example.com")

	updated, session, err := f.auth.ResetPassword(context.Background(), token, "newpass99", "newpass99")
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if updated.ID != user.ID {
		t.Errorf("reset resolved wrong user")
	}
	if updated.ResetToken != nil || updated.ResetTokenExpiry != nil {
		t.Error("reset token not cleared after use")
	}
	if _, _, err := f.auth.Verify(context.Background(), session); err != nil {
		t.Errorf("verify post-reset session: %v", err)
	}

	// old password is gone, new one works
	if _, _, err := f.auth.Signin(context.Background(), "wes@example.com", "secret123"); err == nil {
		t.Error("old password still accepted")
	}
	if _, _, err := f.auth.Signin(context.Background(), "wes@example.com", "newpass99"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// single use
	if _, _, err := f.auth.ResetPassword(context.Background(), token, "again1234", "again1234"); !errors.Is(err, service.ErrValidation) {
		t.Errorf("token reuse err = %v, want ErrValidation", err)
	}
}

func TestPasswordResetRejectsMismatchedConfirmation(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "wes", "wes@example.com")
	token := requestResetToken(t, f, "wes@example.com")

	if _, _, err := f.auth.ResetPassword(context.Background(), token, "one11111", "two22222"); !errors.Is(err, service.ErrValidation) {
		t.Errorf("mismatch err = %v, want ErrValidation", err)
	}
}

func TestPasswordResetRejectsExpiredToken(t *testing.T) {
	f := newFixture(t)
	user := f.signup(t, "wes", "wes@example.com")

	// expiry already in the past
	if err := f.userRepo.SetResetToken(context.Background(), user.ID, "deadbeef", time.Now().Add(-5*time.Minute)); err != nil {
		t.Fatalf("backdate token: %v", err)
	}

	if _, _, err := f.auth.ResetPassword(context.Background(), "deadbeef", "newpass99", "newpass99"); !errors.Is(err, service.ErrValidation) {
		t.Errorf("expired token err = %v, want ErrValidation", err)
	}
}

func TestRequestResetSurfacesMailFailure(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "wes", "wes@example.com")
	f.mail.failWith = errors.New("smtp down")

	if err := f.auth.RequestReset(context.Background(), "wes@example.com"); err == nil {
		t.Error("mail failure silently swallowed")
	}
}

func TestRequestResetUnknownEmail(t *testing.T) {
	f := newFixture(t)

	if err := f.auth.RequestReset(context.Background(), "ghost@example.com"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("unknown email err = %v, want ErrNotFound", err)
	}
}
