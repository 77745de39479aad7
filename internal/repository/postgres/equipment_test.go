package postgres

import (
	"context"
	"testing"
	"time"

	"medequip-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestEquipmentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO equipment").
			WithArgs("EQ005", "Wheelchair", "Mobility", int32(50), "chairs").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, &domain.EquipmentKind{
			ID: "EQ005", Name: "Wheelchair", Category: "Mobility", Quantity: 50, Unit: "chairs",
		})
		assert.NoError(t, err)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO equipment").
			WithArgs("EQ005", "Wheelchair", "Mobility", int32(50), "chairs").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &domain.EquipmentKind{
			ID: "EQ005", Name: "Wheelchair", Category: "Mobility", Quantity: 50, Unit: "chairs",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateEquipment)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "category", "quantity", "unit", "created_on", "updated_on"}).
			AddRow("EQ005", "Wheelchair", "Mobility", 50, "chairs", now, now)

		mock.ExpectQuery("SELECT (.+) FROM equipment WHERE id = \\$1").
			WithArgs("EQ005").
			WillReturnRows(rows)

		kind, err := repo.GetByID(ctx, "EQ005")
		assert.NoError(t, err)
		assert.Equal(t, "EQ005", kind.ID)
		assert.Equal(t, int32(50), kind.Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM equipment WHERE id = \\$1").
			WithArgs("EQ999").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "quantity", "unit", "created_on", "updated_on"}))

		_, err := repo.GetByID(ctx, "EQ999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_Decrement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipment SET quantity = quantity - \\$2").
			WithArgs("EQ005", int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Decrement(ctx, "EQ005", 10)
		assert.NoError(t, err)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		// The guarded update matches no row; the follow-up read proves the
		// kind exists, so the miss means the stock ran short.
		mock.ExpectExec("UPDATE equipment SET quantity = quantity - \\$2").
			WithArgs("EQ005", int32(100)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM equipment WHERE id = \\$1").
			WithArgs("EQ005").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "quantity", "unit", "created_on", "updated_on"}).
				AddRow("EQ005", "Wheelchair", "Mobility", 50, "chairs", now, now))

		err := repo.Decrement(ctx, "EQ005", 100)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipment SET quantity = quantity - \\$2").
			WithArgs("EQ999", int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM equipment WHERE id = \\$1").
			WithArgs("EQ999").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "quantity", "unit", "created_on", "updated_on"}))

		err := repo.Decrement(ctx, "EQ999", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_Increment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipment SET quantity = quantity \\+ \\$2").
			WithArgs("EQ005", int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Increment(ctx, "EQ005", 10)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipment SET quantity = quantity \\+ \\$2").
			WithArgs("EQ999", int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Increment(ctx, "EQ999", 10)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_SetQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE equipment SET quantity = \\$2").
		WithArgs("EQ005", int32(75)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetQuantity(ctx, "EQ005", 75))
	assert.NoError(t, mock.ExpectationsWereMet())
}
