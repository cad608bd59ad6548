package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists order aggregates in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type orderRecord struct {
	ID           int64             `gorm:"primaryKey;column:id"`
	Firstname    string            `gorm:"column:firstname;type:varchar(50);index"`
	Lastname     string            `gorm:"column:lastname;type:varchar(50);index"`
	Phonenumber  string            `gorm:"column:phonenumber;type:varchar(50);index"`
	Address      string            `gorm:"column:address;type:varchar(255)"`
	Comment      string            `gorm:"column:comment"`
	Status       string            `gorm:"column:status;type:varchar(16);index"`
	Payment      string            `gorm:"column:payment;type:varchar(16);index"`
	RegisteredAt time.Time         `gorm:"column:registered_at;index"`
	CalledAt     *time.Time        `gorm:"column:called_at"`
	DeliveredAt  *time.Time        `gorm:"column:delivered_at"`
	Items        []orderItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"column:created_at"`
	UpdatedAt    time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id;autoIncrement"`
	OrderID   int64           `gorm:"column:order_id;index"`
	ProductID int64           `gorm:"column:product_id;index"`
	Quantity  int32           `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(8,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Save persists the aggregate. New orders are created atomically with their
// items; existing orders only update the mutable header fields, never the
// captured line items.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if order.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return r.GetByID(ctx, record.ID)
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"firstname":    record.Firstname,
			"lastname":     record.Lastname,
			"phonenumber":  record.Phonenumber,
			"address":      record.Address,
			"comment":      record.Comment,
			"status":       record.Status,
			"payment":      record.Payment,
			"called_at":    record.CalledAt,
			"delivered_at": record.DeliveredAt,
			"updated_at":   gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).Preload("Items").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// ListByStatus returns orders in any of the given states, oldest first.
func (r *Repository) ListByStatus(ctx context.Context, statuses []domain.Status) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Preload("Items").Order("registered_at, id")
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		query = query.Where("status IN ?", values)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres orders repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	record := orderRecord{
		ID:           order.ID,
		Firstname:    order.Firstname,
		Lastname:     order.Lastname,
		Phonenumber:  order.Phonenumber,
		Address:      order.Address,
		Comment:      order.Comment,
		Status:       string(order.Status),
		Payment:      string(order.Payment),
		RegisteredAt: order.RegisteredAt,
		CalledAt:     order.CalledAt,
		DeliveredAt:  order.DeliveredAt,
	}
	for _, item := range order.Items {
		record.Items = append(record.Items, orderItemRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return record
}

func (record *orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:           record.ID,
		Firstname:    record.Firstname,
		Lastname:     record.Lastname,
		Phonenumber:  record.Phonenumber,
		Address:      record.Address,
		Comment:      record.Comment,
		Status:       domain.Status(record.Status),
		Payment:      domain.Payment(record.Payment),
		RegisteredAt: record.RegisteredAt,
		CalledAt:     record.CalledAt,
		DeliveredAt:  record.DeliveredAt,
	}
	for _, item := range record.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return order
}
