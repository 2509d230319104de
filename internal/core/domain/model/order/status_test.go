package order_test

import (
	"testing"

	"inatpos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s order.StationStatus) *order.StationStatus {
	return &s
}

func TestStation_Validate(t *testing.T) {
	t.Run("should accept kitchen and juicebar", func(t *testing.T) {
		require.NoError(t, order.StationKitchen.Validate())
		require.NoError(t, order.StationJuicebar.Validate())
	})

	t.Run("should reject unknown station", func(t *testing.T) {
		err := order.Station("bar").Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid station")
	})

	t.Run("should reject empty station", func(t *testing.T) {
		require.Error(t, order.Station("").Validate())
	})
}

func TestStationStatus_Validate(t *testing.T) {
	t.Run("should accept all known statuses", func(t *testing.T) {
		require.NoError(t, order.StationStatusPending.Validate())
		require.NoError(t, order.StationStatusInProgress.Validate())
		require.NoError(t, order.StationStatusReady.Validate())
	})

	t.Run("should reject completed as a station status", func(t *testing.T) {
		require.Error(t, order.StationStatus("completed").Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, order.StationStatus("done").Validate())
	})
}

func TestDeriveOverall_BothStationsAssigned(t *testing.T) {
	pending := order.StationStatusPending
	inprogress := order.StationStatusInProgress
	ready := order.StationStatusReady

	tests := []struct {
		name     string
		kitchen  order.StationStatus
		juicebar order.StationStatus
		want     order.OverallStatus
	}{
		{"pending pending", pending, pending, order.OverallStatusPending},
		{"pending inprogress", pending, inprogress, order.OverallStatusInProgress},
		{"pending ready", pending, ready, order.OverallStatusPending},
		{"inprogress pending", inprogress, pending, order.OverallStatusInProgress},
		{"inprogress inprogress", inprogress, inprogress, order.OverallStatusInProgress},
		{"inprogress ready", inprogress, ready, order.OverallStatusInProgress},
		{"ready pending", ready, pending, order.OverallStatusPending},
		{"ready inprogress", ready, inprogress, order.OverallStatusInProgress},
		{"ready ready", ready, ready, order.OverallStatusReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := order.DeriveOverall(&tt.kitchen, &tt.juicebar, order.OverallStatusPending)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveOverall_IsCommutative(t *testing.T) {
	statuses := []order.StationStatus{
		order.StationStatusPending,
		order.StationStatusInProgress,
		order.StationStatusReady,
	}

	for _, a := range statuses {
		for _, b := range statuses {
			kitchen, juicebar := a, b
			straight, straightReady := order.DeriveOverall(&kitchen, &juicebar, order.OverallStatusPending)
			swapped, swappedReady := order.DeriveOverall(&juicebar, &kitchen, order.OverallStatusPending)

			assert.Equal(t, straight, swapped, "derivation must not depend on station order (%s, %s)", a, b)
			assert.Equal(t, straightReady, swappedReady)
		}
	}
}

func TestDeriveOverall_SingleStation(t *testing.T) {
	t.Run("should follow the only assigned station", func(t *testing.T) {
		got, _ := order.DeriveOverall(statusPtr(order.StationStatusInProgress), nil, order.OverallStatusPending)
		assert.Equal(t, order.OverallStatusInProgress, got)

		got, becameReady := order.DeriveOverall(nil, statusPtr(order.StationStatusReady), order.OverallStatusPending)
		assert.Equal(t, order.OverallStatusReady, got)
		assert.True(t, becameReady)
	})
}

func TestDeriveOverall_NoAssignedStations(t *testing.T) {
	t.Run("should fall back to pending without crashing", func(t *testing.T) {
		got, becameReady := order.DeriveOverall(nil, nil, order.OverallStatusPending)

		assert.Equal(t, order.OverallStatusPending, got)
		assert.False(t, becameReady)
	})
}

func TestDeriveOverall_BecameReadyNow(t *testing.T) {
	ready := order.StationStatusReady

	t.Run("should report ready transition exactly when previous was not ready", func(t *testing.T) {
		_, becameReady := order.DeriveOverall(&ready, &ready, order.OverallStatusInProgress)
		assert.True(t, becameReady)

		_, becameReady = order.DeriveOverall(&ready, &ready, order.OverallStatusPending)
		assert.True(t, becameReady)
	})

	t.Run("should not report ready transition when already ready", func(t *testing.T) {
		_, becameReady := order.DeriveOverall(&ready, &ready, order.OverallStatusReady)

		assert.False(t, becameReady)
	})

	t.Run("should never derive completed", func(t *testing.T) {
		got, _ := order.DeriveOverall(&ready, &ready, order.OverallStatusCompleted)

		assert.Equal(t, order.OverallStatusReady, got)
	})
}
