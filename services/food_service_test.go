package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/repository"
)

func newFoods(db *gorm.DB) *FoodService {
	return NewFoodService(repository.NewFoodRepository(db), repository.NewBranchRepository(db))
}

func menuWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	xl := excelize.NewFile()
	defer xl.Close()

	sheet := xl.GetSheetName(0)
	require.NoError(t, xl.SetSheetRow(sheet, "A1", &[]any{"name", "price"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, xl.SetSheetRow(sheet, cell, &row))
	}

	buf, err := xl.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestFoodAddValidatesPrice(t *testing.T) {
	db := openTestDB(t)
	svc := newFoods(db)
	branch := seedBranch(t, db, "menu")

	for _, price := range []string{"abc", "-10", "10.5"} {
		_, err := svc.Add(branch.ID, "kabab", price)
		require.Error(t, err, "price %q", price)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	}

	food, err := svc.Add(branch.ID, " kabab ", "12000")
	require.NoError(t, err)
	assert.Equal(t, "kabab", food.Name)
	assert.True(t, food.Price.Equal(decimal.NewFromInt(12000)))
}

func TestFoodUpdatePrice(t *testing.T) {
	db := openTestDB(t)
	svc := newFoods(db)
	branch := seedBranch(t, db, "repriced")

	food, err := svc.Add(branch.ID, "soup", "800")
	require.NoError(t, err)

	updated, err := svc.UpdatePrice(food.ID, "950")
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(950)))

	_, err = svc.UpdatePrice(9999, "950")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestImportXLSX(t *testing.T) {
	db := openTestDB(t)
	svc := newFoods(db)
	branch := seedBranch(t, db, "imported")

	buf := menuWorkbook(t, [][]any{
		{"kabab", 12000},
		{"dough", 2500},
		{"salad", "3000"},
	})

	n, err := svc.ImportXLSX(branch.ID, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	foods, err := svc.List(branch.ID)
	require.NoError(t, err)
	require.Len(t, foods, 3)
}

func TestImportXLSXAllOrNothing(t *testing.T) {
	db := openTestDB(t)
	svc := newFoods(db)
	branch := seedBranch(t, db, "strict-import")

	buf := menuWorkbook(t, [][]any{
		{"kabab", 12000},
		{"broken", "not-a-price"},
	})

	_, err := svc.ImportXLSX(branch.ID, buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	foods, err := svc.List(branch.ID)
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestImportXLSXRejectsGarbage(t *testing.T) {
	db := openTestDB(t)
	svc := newFoods(db)
	branch := seedBranch(t, db, "garbage")

	_, err := svc.ImportXLSX(branch.ID, bytes.NewBufferString("not an xlsx file"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestImportXLSXUnknownBranch(t *testing.T) {
	svc := newFoods(openTestDB(t))

	_, err := svc.ImportXLSX(4242, bytes.NewBuffer(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

