package screens

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
	"github.com/LeHPhuc/SecondHandMarketApp/session"
)

// ProfileScreen edits the account: personal details and the delivery
// address book used at checkout.
type ProfileScreen struct {
	factory *api.Factory
	session *session.Session
	log     *zap.Logger
}

func NewProfile(f *api.Factory, sess *session.Session, log *zap.Logger) *ProfileScreen {
	return &ProfileScreen{factory: f, session: sess, log: log}
}

// Refresh re-fetches the account record and updates the session copy.
func (s *ProfileScreen) Refresh(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.factory.Authed().Get(ctx, api.CurrentUser, nil, &u); err != nil {
		return nil, err
	}
	if err := s.session.Update(u); err != nil {
		return nil, err
	}
	return &u, nil
}

type ProfileInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// UpdateProfile sends a partial update; avatar is optional.
func (s *ProfileScreen) UpdateProfile(ctx context.Context, in ProfileInput, avatar *api.Upload) (*models.User, error) {
	fields := map[string]string{
		"first_name":   in.FirstName,
		"last_name":    in.LastName,
		"phone_number": in.PhoneNumber,
	}
	var files []api.Upload
	if avatar != nil {
		files = append(files, *avatar)
	}
	var u models.User
	if err := s.factory.Authed().PatchMultipart(ctx, api.UpdateProfile, fields, files, &u); err != nil {
		return nil, err
	}
	if err := s.session.Update(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeliveryInfos lists the address book.
func (s *ProfileScreen) DeliveryInfos(ctx context.Context) ([]models.DeliveryInfo, error) {
	var infos []models.DeliveryInfo
	err := s.factory.Authed().Get(ctx, api.DeliveryInfos, nil, &infos)
	return infos, err
}

// Vouchers lists the redeemable voucher wallet.
func (s *ProfileScreen) Vouchers(ctx context.Context) ([]models.Voucher, error) {
	var vs []models.Voucher
	err := s.factory.Authed().Get(ctx, api.Vouchers, nil, &vs)
	return vs, err
}

type DeliveryInput struct {
	Name        string
	PhoneNumber string
	Address     string
}

var (
	nameRe  = regexp.MustCompile(`^[\p{L} ]+$`)
	phoneRe = regexp.MustCompile(`^(0[3-9])[0-9]{8}$`)
)

// Validate applies the same rules the delivery form enforces: a readable
// recipient name, a Vietnamese mobile number and a full street address.
func (in DeliveryInput) Validate() error {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 45 || !nameRe.MatchString(name) {
		return errors.New("tên người nhận phải từ 2-45 ký tự, chỉ gồm chữ và khoảng trắng")
	}
	if !phoneRe.MatchString(strings.TrimSpace(in.PhoneNumber)) {
		return errors.New("số điện thoại không hợp lệ")
	}
	addr := strings.TrimSpace(in.Address)
	if n := utf8.RuneCountInString(addr); n < 15 || n > 200 {
		return errors.New("địa chỉ phải từ 15-200 ký tự")
	}
	return nil
}

func (in DeliveryInput) payload() map[string]string {
	return map[string]string{
		"name":         strings.TrimSpace(in.Name),
		"phone_number": strings.TrimSpace(in.PhoneNumber),
		"address":      strings.TrimSpace(in.Address),
	}
}

// AddDeliveryInfo validates and stores a new address.
func (s *ProfileScreen) AddDeliveryInfo(ctx context.Context, in DeliveryInput) (*models.DeliveryInfo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var info models.DeliveryInfo
	if err := s.factory.Authed().Post(ctx, api.DeliveryInfos, in.payload(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *ProfileScreen) UpdateDeliveryInfo(ctx context.Context, id int, in DeliveryInput) (*models.DeliveryInfo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var info models.DeliveryInfo
	if err := s.factory.Authed().Patch(ctx, api.WithID(api.DeliveryInfo, id), in.payload(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *ProfileScreen) DeleteDeliveryInfo(ctx context.Context, id int) error {
	return s.factory.Authed().Delete(ctx, api.WithID(api.DeliveryInfo, id), nil)
}
