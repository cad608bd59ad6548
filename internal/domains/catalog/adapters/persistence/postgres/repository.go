package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
	"github.com/foodcartapp/foodcart-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the catalog in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog repository. Caller manages the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type restaurantRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name;type:varchar(50)"`
	Address      string    `gorm:"column:address;type:varchar(100)"`
	ContactPhone string    `gorm:"column:contact_phone;type:varchar(50)"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (restaurantRecord) TableName() string { return "restaurants" }

type productRecord struct {
	ID           int64           `gorm:"primaryKey;column:id"`
	Name         string          `gorm:"column:name;type:varchar(50)"`
	CategoryID   *int64          `gorm:"column:category_id"`
	CategoryName string          `gorm:"column:category_name;type:varchar(50)"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(8,2)"`
	ImageURL     string          `gorm:"column:image_url"`
	Description  string          `gorm:"column:description;type:varchar(200)"`
	Special      bool            `gorm:"column:special;index"`
	Orderable    bool            `gorm:"column:orderable;index"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type menuEntryRecord struct {
	RestaurantID int64     `gorm:"primaryKey;column:restaurant_id;uniqueIndex:idx_menu_restaurant_product"`
	ProductID    int64     `gorm:"primaryKey;column:product_id;uniqueIndex:idx_menu_restaurant_product"`
	Availability bool      `gorm:"column:availability;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (menuEntryRecord) TableName() string { return "menu_entries" }

// SaveRestaurant inserts or updates a restaurant.
func (r *Repository) SaveRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, errors.New("restaurant is nil")
	}
	record := restaurantRecord{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Address:      restaurant.Address,
		ContactPhone: restaurant.ContactPhone,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":          record.Name,
				"address":       record.Address,
				"contact_phone": record.ContactPhone,
				"updated_at":    gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	saved := domain.Restaurant{ID: record.ID, Name: record.Name, Address: record.Address, ContactPhone: record.ContactPhone}
	return &saved, nil
}

// SaveProduct inserts or updates a product.
func (r *Repository) SaveProduct(ctx context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := newProductRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":          record.Name,
				"category_id":   record.CategoryID,
				"category_name": record.CategoryName,
				"price":         record.Price,
				"image_url":     record.ImageURL,
				"description":   record.Description,
				"special":       record.Special,
				"orderable":     record.Orderable,
				"updated_at":    gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetProduct(ctx, record.ID)
}

// SaveMenuEntry upserts the availability flag for the (restaurant, product) pair.
func (r *Repository) SaveMenuEntry(ctx context.Context, entry domain.MenuEntry) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := menuEntryRecord{
		RestaurantID: entry.RestaurantID,
		ProductID:    entry.ProductID,
		Availability: entry.Availability,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"availability": record.Availability,
				"updated_at":   gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

// GetProduct fetches a product by identifier.
func (r *Repository) GetProduct(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// GetProductsByIDs fetches the products matching the given identifiers.
func (r *Repository) GetProductsByIDs(ctx context.Context, ids []int64) ([]*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toProjections(records), nil
}

// ListAvailableProducts returns orderable products carried by at least one restaurant.
func (r *Repository) ListAvailableProducts(ctx context.Context) ([]*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).
		Table("products").
		Select("DISTINCT products.*").
		Joins("JOIN menu_entries ON menu_entries.product_id = products.id AND menu_entries.availability").
		Where("products.orderable").
		Order("products.id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toProjections(records), nil
}

// ListMenuListings returns the availability=true menu entries pre-joined with restaurants.
func (r *Repository) ListMenuListings(ctx context.Context) ([]domain.MenuListing, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []struct {
		RestaurantID   int64
		RestaurantName string
		ProductID      int64
	}
	if err := r.db.WithContext(ctx).
		Table("menu_entries").
		Select("menu_entries.restaurant_id, restaurants.name AS restaurant_name, menu_entries.product_id").
		Joins("JOIN restaurants ON restaurants.id = menu_entries.restaurant_id").
		Where("menu_entries.availability").
		Order("menu_entries.created_at, menu_entries.restaurant_id, menu_entries.product_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	listings := make([]domain.MenuListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, domain.MenuListing{
			RestaurantID:   row.RestaurantID,
			RestaurantName: row.RestaurantName,
			ProductID:      row.ProductID,
			Availability:   true,
		})
	}
	return listings, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func newProductRecord(p *domain.Product) productRecord {
	record := productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Special:     p.Special,
		Orderable:   p.Orderable,
	}
	if p.Category != nil {
		id := p.Category.ID
		record.CategoryID = &id
		record.CategoryName = p.Category.Name
	}
	return record
}

func (record *productRecord) toProjection() *projection.Projection[*domain.Product] {
	product := &domain.Product{
		ID:          record.ID,
		Name:        record.Name,
		Price:       record.Price,
		ImageURL:    record.ImageURL,
		Description: record.Description,
		Special:     record.Special,
		Orderable:   record.Orderable,
	}
	if record.CategoryID != nil {
		product.Category = &domain.ProductCategory{ID: *record.CategoryID, Name: record.CategoryName}
	}
	return projection.New(product, record.CreatedAt, record.UpdatedAt)
}

func toProjections(records []productRecord) []*projection.Projection[*domain.Product] {
	result := make([]*projection.Projection[*domain.Product], 0, len(records))
	for i := range records {
		result = append(result, records[i].toProjection())
	}
	return result
}
