package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// Firebase talks to the Firebase Identity Toolkit REST API. Passwords live
// only there; the backend never sees them and only receives ID tokens.
type Firebase struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewFirebase(apiKey string, log *zap.Logger) *Firebase {
	return &Firebase{
		apiKey:  apiKey,
		baseURL: identityToolkitURL,
		http:    &http.Client{},
		log:     log,
	}
}

// Credentials is what a successful sign-in or sign-up hands back.
type Credentials struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
}

type firebaseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AuthError is a Firebase rejection with the provider's error code kept for
// branching and a user-facing message for display.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth: %s", e.Code)
}

// Messages shown for the Firebase rejections the storefront handles.
var authMessages = map[string]string{
	"EMAIL_NOT_FOUND":             "Email không tồn tại.",
	"INVALID_PASSWORD":            "Mật khẩu không đúng.",
	"INVALID_LOGIN_CREDENTIALS":   "Email hoặc mật khẩu không đúng.",
	"USER_DISABLED":               "Tài khoản đã bị vô hiệu hóa.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Bạn đã thử quá nhiều lần, vui lòng thử lại sau.",
	"EMAIL_EXISTS":                "Email đã được sử dụng.",
	"WEAK_PASSWORD":               "Mật khẩu phải có ít nhất 6 ký tự.",
}

func authErrorFor(code string) *AuthError {
	msg, ok := authMessages[code]
	if !ok {
		msg = "Đăng nhập thất bại, vui lòng thử lại."
	}
	return &AuthError{Code: code, Message: msg}
}

// SignIn exchanges an email/password pair for Firebase credentials.
func (f *Firebase) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var creds Credentials
	if err := f.post(ctx, "accounts:signInWithPassword", payload, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// SignUp creates the Firebase account. The backend account is created
// separately once the email is verified.
func (f *Firebase) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var creds Credentials
	if err := f.post(ctx, "accounts:signUp", payload, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// SendEmailVerification asks Firebase to mail the verification link.
func (f *Firebase) SendEmailVerification(ctx context.Context, idToken string) error {
	payload := map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}
	return f.post(ctx, "accounts:sendOobCode", payload, nil)
}

// SendPasswordReset mails the password reset link.
func (f *Firebase) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return f.post(ctx, "accounts:sendOobCode", payload, nil)
}

// EmailVerified looks up whether the token's account has confirmed its
// email address.
func (f *Firebase) EmailVerified(ctx context.Context, idToken string) (bool, error) {
	payload := map[string]any{"idToken": idToken}
	var resp struct {
		Users []struct {
			EmailVerified bool `json:"emailVerified"`
		} `json:"users"`
	}
	if err := f.post(ctx, "accounts:lookup", payload, &resp); err != nil {
		return false, err
	}
	if len(resp.Users) == 0 {
		return false, fmt.Errorf("auth: account lookup returned no user")
	}
	return resp.Users[0].EmailVerified, nil
}

func (f *Firebase) post(ctx context.Context, action string, payload, out any) error {
	body, _ := json.Marshal(payload)
	url := fmt.Sprintf("%s/%s?key=%s", f.baseURL, action, f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var fe firebaseError
		if err := json.Unmarshal(respBody, &fe); err == nil && fe.Error.Message != "" {
			f.log.Debug("identity provider rejected request",
				zap.String("action", action),
				zap.String("code", fe.Error.Message))
			return authErrorFor(fe.Error.Message)
		}
		return fmt.Errorf("identity provider error (%d): %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse identity provider response: %w", err)
	}
	return nil
}
