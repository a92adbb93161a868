package storage

import (
	"encoding/json"
	"errors"

	"concession-stand-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persisted state layout, one JSON value per key.
const (
	KeyCart           = "cart"
	KeySeat           = "seat"
	KeyDeliveryMethod = "deliveryMethod"
	KeyOrders         = "orders"
	KeyCurrentOrder   = "currentOrder"
)

// Store persists the session state of the ordering app. Missing keys
// load as zero values: an empty cart, no seat, pickup, no orders.
type Store interface {
	LoadCart() ([]models.LineItem, error)
	SaveCart(items []models.LineItem) error

	LoadSeat() (*models.SeatLocation, error)
	SaveSeat(seat *models.SeatLocation) error

	LoadDeliveryMethod() (models.DeliveryMethod, error)
	SaveDeliveryMethod(method models.DeliveryMethod) error

	LoadOrders() ([]models.Order, error)
	SaveOrders(orders []models.Order) error

	LoadCurrentOrder() (*models.Order, error)
	SaveCurrentOrder(order *models.Order) error
}

// Record is one persisted key with its JSON-serialized value
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// KVStore is the sqlite-backed Store implementation
type KVStore struct {
	db *gorm.DB
}

// NewKVStore migrates the record table and returns a ready store
func NewKVStore(db *gorm.DB) (*KVStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := Record{Key: key, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

// get unmarshals the value stored under key into out. A missing key is
// not an error; out is left untouched and ok is false.
func (s *KVStore) get(key string, out interface{}) (bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(rec.Value), out)
}

func (s *KVStore) LoadCart() ([]models.LineItem, error) {
	var items []models.LineItem
	if _, err := s.get(KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *KVStore) SaveCart(items []models.LineItem) error {
	if items == nil {
		items = []models.LineItem{}
	}
	return s.put(KeyCart, items)
}

func (s *KVStore) LoadSeat() (*models.SeatLocation, error) {
	var seat *models.SeatLocation
	if _, err := s.get(KeySeat, &seat); err != nil {
		return nil, err
	}
	return seat, nil
}

func (s *KVStore) SaveSeat(seat *models.SeatLocation) error {
	return s.put(KeySeat, seat)
}

func (s *KVStore) LoadDeliveryMethod() (models.DeliveryMethod, error) {
	method := models.DeliveryPickup
	if _, err := s.get(KeyDeliveryMethod, &method); err != nil {
		return models.DeliveryPickup, err
	}
	return method, nil
}

func (s *KVStore) SaveDeliveryMethod(method models.DeliveryMethod) error {
	return s.put(KeyDeliveryMethod, method)
}

func (s *KVStore) LoadOrders() ([]models.Order, error) {
	var orders []models.Order
	if _, err := s.get(KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *KVStore) SaveOrders(orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return s.put(KeyOrders, orders)
}

func (s *KVStore) LoadCurrentOrder() (*models.Order, error) {
	var order *models.Order
	if _, err := s.get(KeyCurrentOrder, &order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *KVStore) SaveCurrentOrder(order *models.Order) error {
	return s.put(KeyCurrentOrder, order)
}
