package repositories_test

import (
	"testing"
	"time"

	"canteen/internal/models"
	"canteen/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, total string, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		OrderDate: time.Now(),
		Total:     decimal.RequireFromString(total),
		Status:    status,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func orderStatus(t *testing.T, db *gorm.DB, id uint) models.OrderStatus {
	t.Helper()
	var order models.Order
	if err := db.First(&order, "order_id = ?", id).Error; err != nil {
		t.Fatalf("failed to fetch order %d: %v", id, err)
	}
	return order.Status
}

func TestGORMPaymentRepository_Create_CompletesOrderInSameCommit(t *testing.T) {
	db := setupDB(t)
	order := seedOrder(t, db, "190.00", models.OrderStatusPending)
	repo := repositories.NewGORMPaymentRepository(db)

	payment := models.Payment{
		OrderID:     order.OrderID,
		Amount:      order.Total,
		PaymentDate: time.Now(),
		Method:      models.PaymentMethodCard,
		Status:      models.PaymentStatusSuccess,
		Reference:   "ref-1",
	}
	err := repo.Create(&payment, true)
	assert.NoError(t, err)
	assert.NotZero(t, payment.PaymentID)
	assert.Equal(t, models.OrderStatusCompleted, orderStatus(t, db, order.OrderID))
}

func TestGORMPaymentRepository_Create_PendingLeavesOrderAlone(t *testing.T) {
	db := setupDB(t)
	order := seedOrder(t, db, "80.00", models.OrderStatusPending)
	repo := repositories.NewGORMPaymentRepository(db)

	payment := models.Payment{
		OrderID:     order.OrderID,
		Amount:      order.Total,
		PaymentDate: time.Now(),
		Status:      models.PaymentStatusPending,
	}
	err := repo.Create(&payment, false)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, orderStatus(t, db, order.OrderID))
}

func TestGORMPaymentRepository_Create_CompletesEvenCancelledOrders(t *testing.T) {
	db := setupDB(t)
	// Legacy behavior: a successful payment marks even a cancelled order
	// Completed. Kept on purpose.
	order := seedOrder(t, db, "25.00", models.OrderStatusCancelled)
	repo := repositories.NewGORMPaymentRepository(db)

	payment := models.Payment{
		OrderID:     order.OrderID,
		Amount:      order.Total,
		PaymentDate: time.Now(),
		Status:      models.PaymentStatusSuccess,
	}
	err := repo.Create(&payment, true)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, orderStatus(t, db, order.OrderID))
}

func TestGORMPaymentRepository_Create_UnknownOrderRollsBackPayment(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMPaymentRepository(db)

	payment := models.Payment{
		OrderID:     777,
		Amount:      decimal.RequireFromString("10.00"),
		PaymentDate: time.Now(),
		Status:      models.PaymentStatusSuccess,
	}
	err := repo.Create(&payment, true)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	var count int64
	assert.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMPaymentRepository_GetAll_FiltersAndJoinsCustomer(t *testing.T) {
	db := setupDB(t)
	customerID := uint(1)
	assert.NoError(t, db.Create(&models.Customer{CustomerID: customerID, FirstName: "Jane"}).Error)
	order := models.Order{
		CustomerID: &customerID,
		OrderDate:  time.Now(),
		Total:      decimal.RequireFromString("30.00"),
		Status:     models.OrderStatusPending,
	}
	assert.NoError(t, db.Create(&order).Error)
	repo := repositories.NewGORMPaymentRepository(db)

	older := models.Payment{OrderID: order.OrderID, Amount: order.Total, PaymentDate: time.Now().Add(-time.Hour), Status: models.PaymentStatusPending}
	newer := models.Payment{OrderID: order.OrderID, Amount: order.Total, PaymentDate: time.Now(), Status: models.PaymentStatusSuccess}
	assert.NoError(t, repo.Create(&older, false))
	assert.NoError(t, repo.Create(&newer, true))

	all, err := repo.GetAll("")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	// Newest first, with the order's customer joined in.
	assert.Equal(t, newer.PaymentID, all[0].PaymentID)
	if assert.NotNil(t, all[0].CustomerID) {
		assert.Equal(t, customerID, *all[0].CustomerID)
	}

	pending, err := repo.GetAll(models.PaymentStatusPending)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, older.PaymentID, pending[0].PaymentID)
}
