package handlers

import (
	"github.com/mokshlabs/moksh-api/internal/config"
	"github.com/mokshlabs/moksh-api/internal/models"
	"github.com/mokshlabs/moksh-api/internal/rowmap"
	"github.com/mokshlabs/moksh-api/internal/storage"
	"github.com/mokshlabs/moksh-api/internal/store"
)

// Per-entity store interfaces so tests can swap in doubles without a
// database. *store.Store satisfies all of them.

type CategoryStore interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)
	CreateCategory(name string, description *string, order int) (*models.Category, error)
	UpdateCategory(id string, params store.UpdateCategoryParams) (*models.Category, error)
	DeleteCategory(id string) error
}

type ProductStore interface {
	ListProducts(params store.ListProductsParams) ([]rowmap.Record, int, error)
	GetProduct(id string) (rowmap.Record, error)
	LatestProduct() (rowmap.Record, error)
	CreateProduct(params store.CreateProductParams) (rowmap.Record, error)
	UpdateProduct(id string, params store.UpdateProductParams) (rowmap.Record, error)
	DeleteProduct(id string) error
	ToggleProductVisibility(id string) (rowmap.Record, error)
}

type MediaStore interface {
	ListMedia(page, limit int) ([]models.Media, int, error)
	GetMedia(id string) (*models.Media, error)
	CreateMedia(params store.CreateMediaParams) (*models.Media, error)
	DeleteMedia(id string) error
}

type LeadStore interface {
	CreateLead(productID *string, metadata map[string]interface{}) (*models.Lead, error)
}

type SettingsStore interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(params store.UpdateSettingsParams) (*models.Settings, error)
}

type AdminStore interface {
	GetAdminByEmail(email string) (*models.Admin, error)
	GetAdminByID(id string) (*models.Admin, error)
}

type DashboardStore interface {
	CountProducts() (int, error)
	CountCategories() (int, error)
	CountLeads() (int, error)
	RecentLeads(limit int) ([]store.RecentLead, error)
	RecentProducts(limit int) ([]rowmap.Record, error)
}

// Handlers holds all dependencies for the HTTP layer.
type Handlers struct {
	Cfg *config.Config

	Categories CategoryStore
	Products   ProductStore
	Media      MediaStore
	Leads      LeadStore
	Settings   SettingsStore
	Admins     AdminStore
	Dashboard  DashboardStore

	Storage storage.ObjectStorage
}

// New wires every store interface to the one concrete store.
func New(cfg *config.Config, s *store.Store, objStorage storage.ObjectStorage) *Handlers {
	return &Handlers{
		Cfg:        cfg,
		Categories: s,
		Products:   s,
		Media:      s,
		Leads:      s,
		Settings:   s,
		Admins:     s,
		Dashboard:  s,
		Storage:    objStorage,
	}
}
