package screens

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// StoreScreen manages the signed-in user's own store: creating it, editing
// its profile and maintaining its product listings.
type StoreScreen struct {
	factory *api.Factory
	log     *zap.Logger

	// Store creation uploads a logo and is the one call with its own
	// deadline; everything else runs on transport defaults.
	createTimeout time.Duration
}

func NewStore(f *api.Factory, createTimeout time.Duration, log *zap.Logger) *StoreScreen {
	return &StoreScreen{factory: f, createTimeout: createTimeout, log: log}
}

// MyStore fetches the caller's store, or a business error when none exists.
func (s *StoreScreen) MyStore(ctx context.Context) (*models.Store, error) {
	var st models.Store
	if err := s.factory.Authed().Get(ctx, api.MyStore, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

type StoreInput struct {
	StoreName   string
	Description string
	Address     string
	PhoneNumber string
}

func (in StoreInput) fields() map[string]string {
	return map[string]string{
		"store_name":   in.StoreName,
		"description":  in.Description,
		"address":      in.Address,
		"phone_number": in.PhoneNumber,
	}
}

// CreateStore registers a store for the account, logo included.
func (s *StoreScreen) CreateStore(ctx context.Context, in StoreInput, avatar *api.Upload) (*models.Store, error) {
	var files []api.Upload
	if avatar != nil {
		files = append(files, *avatar)
	}
	var st models.Store
	if err := s.factory.Authed().PostMultipart(ctx, api.Stores, in.fields(), files, &st, s.createTimeout); err != nil {
		return nil, err
	}
	s.log.Info("store created", zap.Int("store_id", st.ID), zap.String("store_name", st.StoreName))
	return &st, nil
}

// UpdateStore changes the store profile; avatar is optional.
func (s *StoreScreen) UpdateStore(ctx context.Context, in StoreInput, avatar *api.Upload) (*models.Store, error) {
	var files []api.Upload
	if avatar != nil {
		files = append(files, *avatar)
	}
	var st models.Store
	if err := s.factory.Authed().PatchMultipart(ctx, api.UpdateMyStore, in.fields(), files, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// MyProducts pages through the store's own listings.
func (s *StoreScreen) MyProducts(ctx context.Context, page int) (models.Page[models.Product], error) {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var out models.Page[models.Product]
	err := s.factory.Authed().Get(ctx, api.MyStoreProducts, q, &out)
	return out, err
}

type ProductInput struct {
	Name              string
	Description       string
	Price             models.VND
	AvailableQuantity int
	CategoryIDs       []int
}

func (in ProductInput) fields() map[string]string {
	f := map[string]string{
		"name":               in.Name,
		"description":        in.Description,
		"price":              strconv.FormatFloat(float64(in.Price), 'f', -1, 64),
		"available_quantity": strconv.Itoa(in.AvailableQuantity),
	}
	var ids []string
	for _, id := range in.CategoryIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	if len(ids) > 0 {
		f["categories"] = strings.Join(ids, ",")
	}
	return f
}

// CreateProduct lists a product with its photos.
func (s *StoreScreen) CreateProduct(ctx context.Context, in ProductInput, images []api.Upload) (*models.Product, error) {
	var p models.Product
	if err := s.factory.Authed().PostMultipart(ctx, api.ProductCreate, in.fields(), images, &p, 0); err != nil {
		return nil, err
	}
	s.log.Info("product listed", zap.Int("product_id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

// UpdateProduct edits a listing; new images replace the old set when given.
func (s *StoreScreen) UpdateProduct(ctx context.Context, productID int, in ProductInput, images []api.Upload) (*models.Product, error) {
	var p models.Product
	if err := s.factory.Authed().PatchMultipart(ctx, api.WithID(api.ProductUpdate, productID), in.fields(), images, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct takes a listing down.
func (s *StoreScreen) DeleteProduct(ctx context.Context, productID int) error {
	return s.factory.Authed().Delete(ctx, api.WithID(api.ProductDelete, productID), nil)
}
