package screens

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// HomeScreen browses the public catalogue: paged product lists with search
// and category filters, product details and their review threads. All of it
// works anonymously; only posting a review needs a session.
type HomeScreen struct {
	factory *api.Factory
	log     *zap.Logger

	Query      string
	CategoryID int
	PageNum    int

	page models.Page[models.Product]
}

func NewHome(f *api.Factory, log *zap.Logger) *HomeScreen {
	return &HomeScreen{factory: f, log: log, PageNum: 1}
}

// Load fetches the product page for the current query, category and page.
func (s *HomeScreen) Load(ctx context.Context) error {
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	if s.CategoryID != 0 {
		q.Set("category_id", strconv.Itoa(s.CategoryID))
	}
	if s.PageNum > 1 {
		q.Set("page", strconv.Itoa(s.PageNum))
	}
	return s.factory.Public().Get(ctx, api.Products, q, &s.page)
}

func (s *HomeScreen) Products() []models.Product { return s.page.Results }

func (s *HomeScreen) Total() int { return s.page.Count }

// NextPage moves forward when the backend says there is more, and reports
// whether it moved.
func (s *HomeScreen) NextPage(ctx context.Context) (bool, error) {
	if !s.page.HasNext() {
		return false, nil
	}
	s.PageNum++
	return true, s.Load(ctx)
}

func (s *HomeScreen) PrevPage(ctx context.Context) (bool, error) {
	if !s.page.HasPrevious() || s.PageNum <= 1 {
		return false, nil
	}
	s.PageNum--
	return true, s.Load(ctx)
}

// Search resets to the first page of a new query.
func (s *HomeScreen) Search(ctx context.Context, query string, categoryID int) error {
	s.Query, s.CategoryID, s.PageNum = query, categoryID, 1
	return s.Load(ctx)
}

func (s *HomeScreen) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := s.factory.Public().Get(ctx, api.Categories, nil, &cats)
	return cats, err
}

func (s *HomeScreen) Product(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := s.factory.Public().Get(ctx, api.WithID(api.ProductDetail, id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Comments pages through a product's review thread.
func (s *HomeScreen) Comments(ctx context.Context, productID, page int) (models.Page[models.Comment], error) {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var out models.Page[models.Comment]
	err := s.factory.Public().Get(ctx, api.WithID(api.ProductComments, productID), q, &out)
	return out, err
}

// AddComment posts a review with a 1..5 star rating.
func (s *HomeScreen) AddComment(ctx context.Context, productID int, content string, rating int) (*models.Comment, error) {
	req := map[string]any{"content": content, "rating": rating}
	var c models.Comment
	if err := s.factory.Authed().Post(ctx, api.WithID(api.ProductComments, productID), req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Stores lists the marketplace's stores.
func (s *HomeScreen) Stores(ctx context.Context, page int) (models.Page[models.Store], error) {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var out models.Page[models.Store]
	err := s.factory.Public().Get(ctx, api.Stores, q, &out)
	return out, err
}

// StoreProducts lists one store's catalogue.
func (s *HomeScreen) StoreProducts(ctx context.Context, storeID, page int) (models.Page[models.Product], error) {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var out models.Page[models.Product]
	err := s.factory.Public().Get(ctx, api.WithID(api.StoreProducts, storeID), q, &out)
	return out, err
}
