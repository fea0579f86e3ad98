package auth

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
	"github.com/LeHPhuc/SecondHandMarketApp/session"
)

// ErrEmailNotVerified is returned by SignIn until the verification link
// has been clicked; callers offer to resend it.
var ErrEmailNotVerified = errors.New("auth: email not verified")

// Service runs the sign-in and registration flows: Firebase owns the
// password, the backend owns the user record, the session stores the result.
type Service struct {
	firebase *Firebase
	factory  *api.Factory
	session  *session.Session
	log      *zap.Logger
}

func NewService(firebase *Firebase, factory *api.Factory, sess *session.Session, log *zap.Logger) *Service {
	return &Service{firebase: firebase, factory: factory, session: sess, log: log}
}

// SignIn authenticates against Firebase, requires a verified email,
// exchanges the ID token for the backend user record and stores both in
// the session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	creds, err := s.firebase.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	verified, err := s.firebase.EmailVerified(ctx, creds.IDToken)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrEmailNotVerified
	}

	var user models.User
	if err := s.factory.Bearer(creds.IDToken).Post(ctx, api.Login, nil, &user); err != nil {
		return nil, err
	}
	if err := s.session.Login(user, creds.IDToken); err != nil {
		return nil, err
	}
	s.log.Info("signed in", zap.String("email", user.Email))
	return &user, nil
}

// ResendVerification signs in just far enough to send the verification
// mail again.
func (s *Service) ResendVerification(ctx context.Context, email, password string) error {
	creds, err := s.firebase.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return s.firebase.SendEmailVerification(ctx, creds.IDToken)
}

// Registration is the profile the backend account is created with.
type Registration struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	AvatarName  string
	Avatar      io.Reader
}

// Register creates the Firebase account and mails the verification link.
// The backend record is created by CompleteRegistration once the link has
// been clicked.
func (s *Service) Register(ctx context.Context, email, password string) error {
	creds, err := s.firebase.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	return s.firebase.SendEmailVerification(ctx, creds.IDToken)
}

// CompleteRegistration finishes sign-up after email verification: it signs
// in, creates the backend user record and opens the session.
func (s *Service) CompleteRegistration(ctx context.Context, reg Registration) (*models.User, error) {
	creds, err := s.firebase.SignIn(ctx, reg.Email, reg.Password)
	if err != nil {
		return nil, err
	}
	verified, err := s.firebase.EmailVerified(ctx, creds.IDToken)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrEmailNotVerified
	}

	fields := map[string]string{
		"first_name":   reg.FirstName,
		"last_name":    reg.LastName,
		"phone_number": reg.PhoneNumber,
	}
	var files []api.Upload
	if reg.Avatar != nil {
		files = append(files, api.Upload{Field: "avatar", FileName: reg.AvatarName, Reader: reg.Avatar})
	}

	var user models.User
	if err := s.factory.Bearer(creds.IDToken).PostMultipart(ctx, api.Register, fields, files, &user, 0); err != nil {
		return nil, err
	}
	if err := s.session.Login(user, creds.IDToken); err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword mails a reset link for the address.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	return s.firebase.SendPasswordReset(ctx, email)
}

// SignOut drops the stored identity.
func (s *Service) SignOut() error {
	return s.session.Logout()
}
