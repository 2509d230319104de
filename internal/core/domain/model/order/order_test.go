package order_test

import (
	"testing"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, station order.Station, quantity int, price float64, addOns ...order.LineAddOn) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Doro Wat", "ዶሮ ወጥ", quantity, price, addOns, station, "")
	require.NoError(t, err)
	return line
}

func mustOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "001", lines,
		kernel.NewUUID(), "Hanna", "", "",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("should reject quantity below one", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Doro Wat", "ዶሮ ወጥ", 0, 100, nil, order.StationKitchen, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Doro Wat", "ዶሮ ወጥ", 1, -10, nil, order.StationKitchen, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid station", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Doro Wat", "ዶሮ ወጥ", 1, 100, nil, order.Station("bar"), "")

		require.Error(t, err)
	})

	t.Run("should multiply add-on prices by the line quantity", func(t *testing.T) {
		addOn, err := order.NewLineAddOn(kernel.NewUUID(), "Extra Injera", "ተጨማሪ እንጀራ", 10)
		require.NoError(t, err)

		line := mustLine(t, order.StationKitchen, 2, 100, addOn)

		// 2 x 100 for the item plus 2 x 10 for the add-on.
		assert.InDelta(t, 220.0, line.Subtotal(), 0.0001)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should reject an order without lines", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "001", nil,
			kernel.NewUUID(), "Hanna", "", "",
			time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an empty order number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", []order.Line{mustLine(t, order.StationKitchen, 1, 50)},
			kernel.NewUUID(), "Hanna", "", "",
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should start both stations at pending when both have lines", func(t *testing.T) {
		o := mustOrder(t,
			mustLine(t, order.StationKitchen, 1, 50),
			mustLine(t, order.StationKitchen, 2, 80),
			mustLine(t, order.StationJuicebar, 1, 30),
		)

		require.NotNil(t, o.KitchenStatus())
		require.NotNil(t, o.JuicebarStatus())
		assert.Equal(t, order.StationStatusPending, *o.KitchenStatus())
		assert.Equal(t, order.StationStatusPending, *o.JuicebarStatus())
		assert.Equal(t, order.OverallStatusPending, o.OverallStatus())
	})

	t.Run("should leave a station absent when no line targets it", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))

		require.NotNil(t, o.KitchenStatus())
		assert.Nil(t, o.JuicebarStatus())
		assert.True(t, o.HasStation(order.StationKitchen))
		assert.False(t, o.HasStation(order.StationJuicebar))
	})

	t.Run("should sum line subtotals into the total", func(t *testing.T) {
		addOn, err := order.NewLineAddOn(kernel.NewUUID(), "Extra Injera", "ተጨማሪ እንጀራ", 10)
		require.NoError(t, err)

		o := mustOrder(t,
			mustLine(t, order.StationKitchen, 2, 100, addOn),
			mustLine(t, order.StationJuicebar, 1, 30),
		)

		assert.InDelta(t, 250.0, o.Total(), 0.0001)
	})
}

func TestOrder_SetStationStatus(t *testing.T) {
	now := time.Now()

	t.Run("should follow the full preparation trace", func(t *testing.T) {
		o := mustOrder(t,
			mustLine(t, order.StationKitchen, 1, 50),
			mustLine(t, order.StationKitchen, 1, 70),
			mustLine(t, order.StationJuicebar, 1, 30),
		)
		assert.Equal(t, order.OverallStatusPending, o.OverallStatus())

		require.NoError(t, o.SetStationStatus(order.StationKitchen, order.StationStatusInProgress, now))
		assert.Equal(t, order.OverallStatusInProgress, o.OverallStatus())

		require.NoError(t, o.SetStationStatus(order.StationKitchen, order.StationStatusReady, now))
		require.NoError(t, o.SetStationStatus(order.StationJuicebar, order.StationStatusInProgress, now))
		assert.Equal(t, order.OverallStatusInProgress, o.OverallStatus())
		assert.Nil(t, o.ReadyAt())

		require.NoError(t, o.SetStationStatus(order.StationJuicebar, order.StationStatusReady, now))
		assert.Equal(t, order.OverallStatusReady, o.OverallStatus())
		require.NotNil(t, o.ReadyAt())
	})

	t.Run("should stamp readyAt exactly once", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))
		firstReady := now

		require.NoError(t, o.SetStationStatus(order.StationKitchen, order.StationStatusReady, firstReady))
		require.NotNil(t, o.ReadyAt())
		stamped := *o.ReadyAt()

		// Move away from ready and back with a later timestamp.
		require.NoError(t, o.SetStationStatus(order.StationKitchen, order.StationStatusInProgress, now.Add(time.Minute)))
		require.NoError(t, o.SetStationStatus(order.StationKitchen, order.StationStatusReady, now.Add(2*time.Minute)))

		require.NotNil(t, o.ReadyAt())
		assert.True(t, stamped.Equal(*o.ReadyAt()), "readyAt must not change after the first ready transition")
	})

	t.Run("should reject an update for an absent station", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))

		err := o.SetStationStatus(order.StationJuicebar, order.StationStatusReady, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject any update on a completed order", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))
		payment, err := order.NewPayment(order.PaymentMethodCash, 100, 50, "")
		require.NoError(t, err)
		require.NoError(t, o.CompletePayment(payment, now))

		updateErr := o.SetStationStatus(order.StationKitchen, order.StationStatusReady, now)

		require.Error(t, updateErr)
		require.ErrorIs(t, updateErr, errs.ErrConflict)
		assert.Equal(t, order.OverallStatusCompleted, o.OverallStatus())
	})

	t.Run("should reject invalid station and status tokens", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))

		require.Error(t, o.SetStationStatus(order.Station("bar"), order.StationStatusReady, now))
		require.Error(t, o.SetStationStatus(order.StationKitchen, order.StationStatus("completed"), now))
	})
}

func TestOrder_CompletePayment(t *testing.T) {
	now := time.Now()

	t.Run("should complete from any non-terminal state", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))
		payment, err := order.NewPayment(order.PaymentMethodCard, 50, 0, "")
		require.NoError(t, err)

		// Still pending; manual close-out is allowed.
		require.NoError(t, o.CompletePayment(payment, now))

		assert.Equal(t, order.OverallStatusCompleted, o.OverallStatus())
		require.NotNil(t, o.CompletedAt())
		require.NotNil(t, o.Payment())
		assert.Equal(t, order.PaymentMethodCard, o.Payment().Method())
	})

	t.Run("should reject a second payment and leave the order unchanged", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))
		payment, err := order.NewPayment(order.PaymentMethodCash, 100, 50, "")
		require.NoError(t, err)
		require.NoError(t, o.CompletePayment(payment, now))
		completedAt := *o.CompletedAt()

		second, err := order.NewPayment(order.PaymentMethodMobile, 50, 0, "telebirr")
		require.NoError(t, err)
		secondErr := o.CompletePayment(second, now.Add(time.Minute))

		require.Error(t, secondErr)
		require.ErrorIs(t, secondErr, errs.ErrConflict)
		assert.Equal(t, order.PaymentMethodCash, o.Payment().Method())
		assert.True(t, completedAt.Equal(*o.CompletedAt()), "completedAt must not be re-stamped")
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("should require a provider for mobile payments", func(t *testing.T) {
		_, err := order.NewPayment(order.PaymentMethodMobile, 100, 0, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unknown method", func(t *testing.T) {
		_, err := order.NewPayment(order.PaymentMethod("cheque"), 100, 0, "")

		require.Error(t, err)
	})
}

func TestOrder_Events(t *testing.T) {
	t.Run("should omit absent stations from the created event", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationJuicebar, 1, 30))

		event := o.CreatedEvent()

		assert.Equal(t, order.EventNameNewOrder, event.EventName())
		assert.Equal(t, o.ID().String(), event.OrderID)
		assert.Equal(t, o.Number(), event.OrderNumber)
		assert.Nil(t, event.KitchenStatus)
		require.NotNil(t, event.JuicebarStatus)
		assert.Equal(t, order.StationStatusPending, *event.JuicebarStatus)
	})

	t.Run("should carry the derived overall status in the update event", func(t *testing.T) {
		o := mustOrder(t, mustLine(t, order.StationKitchen, 1, 50))
		require.NoError(t, o.SetStationStatus(order.StationKitchen, order.StationStatusReady, time.Now()))

		event := o.StatusUpdatedEvent(order.StationKitchen, order.StationStatusReady)

		assert.Equal(t, order.EventNameOrderStatusUpdated, event.EventName())
		assert.Equal(t, order.StationKitchen, event.Station)
		assert.Equal(t, order.StationStatusReady, event.NewStatus)
		assert.Equal(t, order.OverallStatusReady, event.OverallStatus)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore stored state without re-deriving it", func(t *testing.T) {
		readyAt := time.Now().Add(-time.Hour)
		ready := order.StationStatusReady

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "042",
			[]order.Line{mustLine(t, order.StationKitchen, 1, 50)},
			&ready, nil,
			order.OverallStatusReady,
			50, nil,
			kernel.NewUUID(), "Hanna", "", "",
			readyAt.Add(-time.Hour), &readyAt, nil,
			3,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OverallStatusReady, o.OverallStatus())
		assert.Equal(t, int64(3), o.Version())
		require.NotNil(t, o.ReadyAt())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "042",
			[]order.Line{mustLine(t, order.StationKitchen, 1, 50)},
			nil, nil,
			order.OverallStatus("archived"),
			50, nil,
			kernel.NewUUID(), "Hanna", "", "",
			time.Now(), nil, nil,
			0,
		)

		require.Error(t, err)
	})
}
