package services_test

import (
	"context"
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodService_RoundTrip(t *testing.T) {
	svc := services.NewFoodService(newTestDB(t))
	ctx := context.Background()

	saved, err := svc.AddEntry(ctx, &database.FoodEntry{
		Name:      "oatmeal",
		Carbs:     float64Ptr(27),
		Timestamp: 1700000000000,
		Notes:     strPtr("breakfast"),
	})
	require.NoError(t, err)
	assert.Positive(t, saved.ID)

	entries, err := svc.GetEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "oatmeal", entries[0].Name)
	require.NotNil(t, entries[0].Carbs)
	assert.Equal(t, 27.0, *entries[0].Carbs)
	require.NotNil(t, entries[0].Notes)
	assert.Equal(t, "breakfast", *entries[0].Notes)

	err = svc.UpdateEntry(ctx, saved.ID, database.FoodPatch{Carbs: float64Ptr(30)})
	require.NoError(t, err)

	entries, err = svc.GetEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 30.0, *entries[0].Carbs)
	assert.Equal(t, "oatmeal", entries[0].Name)

	require.NoError(t, svc.DeleteEntry(ctx, saved.ID))
	entries, err = svc.GetEntries(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFoodService_CarbsOptional(t *testing.T) {
	svc := services.NewFoodService(newTestDB(t))

	saved, err := svc.AddEntry(context.Background(), &database.FoodEntry{Name: "coffee", Timestamp: 1})
	require.NoError(t, err)
	assert.Nil(t, saved.Carbs)
}

func TestInsulinService_RoundTrip(t *testing.T) {
	svc := services.NewInsulinService(newTestDB(t))
	ctx := context.Background()

	saved, err := svc.AddDose(ctx, &database.InsulinDose{
		Units:     6.5,
		Type:      database.InsulinRapid,
		Timestamp: 1700000000000,
	})
	require.NoError(t, err)

	doses, err := svc.GetDoses(ctx, 0)
	require.NoError(t, err)
	require.Len(t, doses, 1)
	assert.Equal(t, 6.5, doses[0].Units)
	assert.Equal(t, database.InsulinRapid, doses[0].Type)
	assert.Nil(t, doses[0].Notes)

	longActing := database.InsulinLong
	err = svc.UpdateDose(ctx, saved.ID, database.InsulinPatch{Type: &longActing})
	require.NoError(t, err)

	doses, err = svc.GetDoses(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, database.InsulinLong, doses[0].Type)
	assert.Equal(t, 6.5, doses[0].Units)

	require.NoError(t, svc.DeleteDose(ctx, saved.ID))
	doses, err = svc.GetDoses(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, doses)
}

func TestA1CService_RoundTrip(t *testing.T) {
	svc := services.NewA1CService(newTestDB(t))
	ctx := context.Background()

	saved, err := svc.AddReading(ctx, &database.A1CReading{Value: 6.8, Timestamp: 1700000000000})
	require.NoError(t, err)

	readings, err := svc.GetReadings(ctx, 0)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 6.8, readings[0].Value)

	err = svc.UpdateReading(ctx, saved.ID, database.A1CPatch{Value: float64Ptr(6.4)})
	require.NoError(t, err)

	readings, err = svc.GetReadings(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.4, readings[0].Value)

	require.NoError(t, svc.DeleteReading(ctx, saved.ID))
	readings, err = svc.GetReadings(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestWeightService_RoundTrip(t *testing.T) {
	svc := services.NewWeightService(newTestDB(t))
	ctx := context.Background()

	saved, err := svc.AddMeasurement(ctx, &database.WeightMeasurement{Value: 82.4, Timestamp: 1700000000000})
	require.NoError(t, err)

	measurements, err := svc.GetMeasurements(ctx, 0)
	require.NoError(t, err)
	require.Len(t, measurements, 1)
	assert.Equal(t, 82.4, measurements[0].Value)

	err = svc.UpdateMeasurement(ctx, saved.ID, database.WeightPatch{Notes: strPtr("after vacation")})
	require.NoError(t, err)

	measurements, err = svc.GetMeasurements(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, measurements[0].Notes)
	assert.Equal(t, "after vacation", *measurements[0].Notes)
	assert.Equal(t, 82.4, measurements[0].Value)

	require.NoError(t, svc.DeleteMeasurement(ctx, saved.ID))
	measurements, err = svc.GetMeasurements(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, measurements)
}

func TestBloodPressureService_RoundTrip(t *testing.T) {
	svc := services.NewBloodPressureService(newTestDB(t))
	ctx := context.Background()

	saved, err := svc.AddReading(ctx, &database.BloodPressureReading{
		Systolic:  128,
		Diastolic: 82,
		Timestamp: 1700000000000,
	})
	require.NoError(t, err)

	readings, err := svc.GetReadings(ctx, 0)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 128, readings[0].Systolic)
	assert.Equal(t, 82, readings[0].Diastolic)

	newDiastolic := 79
	err = svc.UpdateReading(ctx, saved.ID, database.BloodPressurePatch{Diastolic: &newDiastolic})
	require.NoError(t, err)

	readings, err = svc.GetReadings(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 128, readings[0].Systolic)
	assert.Equal(t, 79, readings[0].Diastolic)

	require.NoError(t, svc.DeleteReading(ctx, saved.ID))
	readings, err = svc.GetReadings(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestRangeQueries_AcrossServices(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	food := services.NewFoodService(db)
	for _, ts := range []int64{1000, 2000, 3000} {
		_, err := food.AddEntry(ctx, &database.FoodEntry{Name: "snack", Timestamp: ts})
		require.NoError(t, err)
	}
	entries, err := food.GetEntriesForRange(ctx, 1000, 2000)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	insulin := services.NewInsulinService(db)
	for _, ts := range []int64{1000, 2000, 3000} {
		_, err := insulin.AddDose(ctx, &database.InsulinDose{Units: 2, Type: database.InsulinRapid, Timestamp: ts})
		require.NoError(t, err)
	}
	doses, err := insulin.GetDosesForRange(ctx, 2000, 3000)
	require.NoError(t, err)
	assert.Len(t, doses, 2)
	assert.Equal(t, int64(3000), doses[0].Timestamp, "newest first")
}
