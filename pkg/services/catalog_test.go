package services

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

func TestEquipmentOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("get with suffix", func(t *testing.T) {
		spy := newSpy()
		_, err := NewEquipmentService(spy, "v1").Get(ctx, "320", models.Ptr("N"))
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, "api/nsk/v1/resources/equipment/320", call.Path)
		assert.Equal(t, "N", call.Query.Get("EquipmentSuffix"))
	})

	t.Run("search query", func(t *testing.T) {
		spy := newSpy()
		_, err := NewEquipmentService(spy, "v1").Search(ctx, models.EquipmentSearchRequest{
			EquipmentTypes: []string{"320", "73H"},
			ItemCount:      models.Ptr(50),
		})
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, []string{"320", "73H"}, call.Query["EquipmentTypes"])
		assert.Equal(t, "50", call.Query.Get("ItemCount"))
	})

	t.Run("configuration", func(t *testing.T) {
		spy := newSpy()
		_, err := NewEquipmentService(spy, "v1").GetConfiguration(ctx, "320", "Y180")
		require.NoError(t, err)
		assert.Equal(t, "api/nsk/v1/resources/equipment/320/configurations/Y180", spy.only(t).Path)
	})

	t.Run("two character suffix", func(t *testing.T) {
		spy := newSpy()
		_, err := NewEquipmentService(spy, "v1").Get(ctx, "320", models.Ptr("NX"))
		requireRejected(t, spy, err, "")
	})
}

func TestMessageOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("send email", func(t *testing.T) {
		spy := newSpy()
		_, err := NewMessageService(spy, "v1").SendEmail(ctx, "ada@example.com", "Itinerary", "Your trip")
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, http.MethodPost, call.Method)
		assert.Equal(t, "api/nsk/v1/messages", call.Path)
	})

	t.Run("email with an SMS address", func(t *testing.T) {
		spy := newSpy()
		_, err := NewMessageService(spy, "v1").SendEmail(ctx, "+15551234567", "Itinerary", "Your trip")
		requireRejected(t, spy, err, "email")
	})

	t.Run("mark read", func(t *testing.T) {
		spy := newSpy()
		_, err := NewMessageService(spy, "v1").MarkRead(ctx, "msg-0001")
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, http.MethodPut, call.Method)
		assert.Equal(t, "api/nsk/v1/messages/msg-0001/read", call.Path)
	})

	t.Run("list filters", func(t *testing.T) {
		spy := newSpy()
		_, err := NewMessageService(spy, "v1").List(ctx, models.MessageListRequest{
			Status:   models.Ptr(models.MessageUnread),
			PageSize: models.Ptr(25),
		})
		require.NoError(t, err)
		q := spy.only(t).Query
		assert.Equal(t, "Unread", q.Get("Status"))
		assert.Equal(t, "25", q.Get("PageSize"))
	})

	t.Run("delete with short key", func(t *testing.T) {
		spy := newSpy()
		_, err := NewMessageService(spy, "v1").Delete(ctx, "m1")
		requireRejected(t, spy, err, "Message key")
	})
}

func TestQueueOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("add booking to queue uses manual entry", func(t *testing.T) {
		spy := newSpy()
		_, err := NewQueueService(spy, "v2").AddBookingToQueue(ctx, "SCHED", models.Ptr("check times"))
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, "api/nsk/v2/booking/queue", call.Path)
		req, ok := call.Body.(models.QueueBookingRequest)
		require.True(t, ok)
		assert.Equal(t, models.QueueEventTypeManualEntry, req.QueueEventType)
	})

	t.Run("default event type", func(t *testing.T) {
		spy := newSpy()
		_, err := NewQueueService(spy, "v2").RemoveBooking(ctx, models.QueueBookingRequest{QueueCode: "SCHED"})
		requireRejected(t, spy, err, "Default is invalid")
	})

	t.Run("remove booking sends a body on DELETE", func(t *testing.T) {
		spy := newSpy()
		req := models.QueueBookingRequest{QueueCode: "SCHED", QueueEventType: models.QueueEventTypeScheduleChg}
		_, err := NewQueueService(spy, "v2").RemoveBooking(ctx, req)
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, http.MethodDelete, call.Method)
		assert.Equal(t, req, call.Body)
	})

	t.Run("dequeue", func(t *testing.T) {
		spy := newSpy()
		_, err := NewQueueService(spy, "v2").Dequeue(ctx, "SCHED", models.DequeueRequest{QueueCategoryCode: "A"})
		require.NoError(t, err)
		assert.Equal(t, "api/nsk/v2/queues/SCHED/next", spy.only(t).Path)
	})

	t.Run("move item", func(t *testing.T) {
		spy := newSpy()
		_, err := NewQueueService(spy, "v2").MoveItem(ctx, "item-0001", models.MoveQueueItemRequest{TargetQueueCode: "DONE", QueueEventType: 1})
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, http.MethodPut, call.Method)
		assert.Equal(t, "api/nsk/v2/queues/items/item-0001", call.Path)
	})

	t.Run("list page size too small", func(t *testing.T) {
		spy := newSpy()
		_, err := NewQueueService(spy, "v2").List(ctx, models.QueueListRequest{PageSize: models.Ptr(5)})
		requireRejected(t, spy, err, "pageSize")
	})

	t.Run("items query", func(t *testing.T) {
		spy := newSpy()
		_, err := NewQueueService(spy, "v2").GetItems(ctx, "SCHED", models.QueueItemsRequest{PageSize: models.Ptr(100)})
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, "api/nsk/v2/queues/SCHED/items", call.Path)
		assert.Equal(t, "100", call.Query.Get("PageSize"))
	})
}

func ssrSale(code string) models.SsrSellRequest {
	return models.SsrSellRequest{Items: []models.SsrItem{{
		SsrCode:      code,
		PassengerKey: passengerKey,
		SegmentKey:   models.Ptr(segmentKey),
		Count:        1,
	}}}
}

func TestAddOnsSsrCodePolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code is logged and sent", func(t *testing.T) {
		var buf bytes.Buffer
		prev := logging.Logger()
		logging.SetLogger(logging.NewTestLogger(&buf))
		t.Cleanup(func() { logging.SetLogger(prev) })

		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", false).SellSsrs(ctx, ssrSale("ZZZZ"))
		require.NoError(t, err)
		assert.Equal(t, "api/nsk/v2/booking/ssrs", spy.only(t).Path)
		assert.Contains(t, buf.String(), "ZZZZ")
	})

	t.Run("unknown code is rejected when strict", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", true).SellSsrs(ctx, ssrSale("ZZZZ"))
		requireRejected(t, spy, err, "not a recognised SSR code")
	})

	t.Run("known code passes when strict", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", true).SellSsrs(ctx, ssrSale("WCHR"))
		require.NoError(t, err)
		assert.Len(t, spy.Calls(), 1)
	})
}

func TestAddOnsOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("checked bag at the limit", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", false).AddCheckedBag(ctx, passengerKey, journeyKey, 50)
		require.NoError(t, err)
		assert.Equal(t, "api/nsk/v2/booking/passengers/"+passengerKey+"/baggage", spy.only(t).Path)
	})

	t.Run("checked bag over the limit", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", false).AddCheckedBag(ctx, passengerKey, journeyKey, 50.01)
		requireRejected(t, spy, err, "must not exceed 50 kg")
	})

	t.Run("ssr availability needs one key list", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", false).GetSsrAvailability(ctx, models.SsrAvailabilityRequest{})
		requireRejected(t, spy, err, "exactly one of journeyKeys or segmentKeys")
	})

	t.Run("insurance beneficiaries must total 100", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", false).AddInsurance(ctx, models.InsuranceRequest{
			CoverageType:         models.CoverageStandard,
			PolicyStart:          futureDate(5),
			PolicyEnd:            futureDate(20),
			InsuredPassengerKeys: []string{passengerKey},
			CoverageAmount:       1000,
			CurrencyCode:         "USD",
			Beneficiaries: []models.Beneficiary{
				{Name: "A", Relationship: models.RelationshipSpouse, Percentage: 40},
				{Name: "B", Relationship: models.RelationshipChild, Percentage: 30},
				{Name: "C", Relationship: models.RelationshipChild, Percentage: 20},
			},
		})
		requireRejected(t, spy, err, "must total 100")
	})

	t.Run("meal", func(t *testing.T) {
		spy := newSpy()
		_, err := NewAddOnsService(spy, "v2", false).AddMeal(ctx, models.MealRequest{
			MealCode:     "VGML",
			PassengerKey: passengerKey,
			SegmentKey:   segmentKey,
		})
		require.NoError(t, err)
		assert.Equal(t, "api/nsk/v2/booking/addons/meals", spy.only(t).Path)
	})

	t.Run("list and remove", func(t *testing.T) {
		spy := newSpy()
		svc := NewAddOnsService(spy, "v2", false)
		_, err := svc.List(ctx)
		require.NoError(t, err)
		_, err = svc.Remove(ctx, "addon-0001")
		require.NoError(t, err)
		_, err = svc.RemoveSsr(ctx, "ssr-0001")
		require.NoError(t, err)
		_, err = svc.GetBaggageAllowance(ctx, journeyKey)
		require.NoError(t, err)

		calls := spy.Calls()
		require.Len(t, calls, 4)
		assert.Equal(t, "api/nsk/v2/booking/addons", calls[0].Path)
		assert.Equal(t, "api/nsk/v2/booking/addons/addon-0001", calls[1].Path)
		assert.Equal(t, "api/nsk/v2/booking/ssrs/ssr-0001", calls[2].Path)
		assert.Equal(t, "api/nsk/v2/booking/journeys/"+journeyKey+"/baggage/allowances", calls[3].Path)
	})
}

func TestNavigationOperations(t *testing.T) {
	ctx := context.Background()

	spy := newSpy()
	svc := NewNavigationService(spy, "v1")
	_, err := svc.GetStations(ctx, models.StationListRequest{CountryCode: models.Ptr("US"), ActiveOnly: models.Ptr(true)})
	require.NoError(t, err)
	_, err = svc.GetStation(ctx, "JFK")
	require.NoError(t, err)
	_, err = svc.GetCountries(ctx, models.Ptr("en-US"))
	require.NoError(t, err)
	_, err = svc.GetCountry(ctx, "KE")
	require.NoError(t, err)
	_, err = svc.GetCurrencies(ctx)
	require.NoError(t, err)
	_, err = svc.GetCurrency(ctx, "EUR")
	require.NoError(t, err)
	_, err = svc.GetMarkets(ctx, models.MarketListRequest{Origin: models.Ptr("JFK")})
	require.NoError(t, err)

	calls := spy.Calls()
	require.Len(t, calls, 7)
	paths := make([]string, len(calls))
	for i, c := range calls {
		assert.Equal(t, http.MethodGet, c.Method)
		assert.Equal(t, "navigation", c.Module)
		paths[i] = c.Path
	}
	assert.Equal(t, []string{
		"api/nsk/v1/resources/stations",
		"api/nsk/v1/resources/stations/JFK",
		"api/nsk/v1/resources/countries",
		"api/nsk/v1/resources/countries/KE",
		"api/nsk/v1/resources/currencies",
		"api/nsk/v1/resources/currencies/EUR",
		"api/nsk/v1/resources/markets",
	}, paths)
	assert.Equal(t, "true", calls[0].Query.Get("ActiveOnly"))
	assert.Equal(t, "en-US", calls[2].Query.Get("CultureCode"))
}

func TestNavigationRejections(t *testing.T) {
	ctx := context.Background()

	spy := newSpy()
	svc := NewNavigationService(spy, "v1")
	_, err := svc.GetStation(ctx, "jfk")
	requireRejected(t, spy, err, "stationCode")
	_, err = svc.GetMarkets(ctx, models.MarketListRequest{Origin: models.Ptr("JFK"), Destination: models.Ptr("JFK")})
	requireRejected(t, spy, err, "must be different")
	_, err = svc.GetCurrency(ctx, "usd")
	requireRejected(t, spy, err, "currencyCode")
}

func TestUserOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("register", func(t *testing.T) {
		spy := newSpy()
		_, err := NewUserService(spy, "v1").Register(ctx, "ada@example.com", "Secret123", "Ada", "Lovelace", "ada@example.com", "1990-05-01")
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, http.MethodPost, call.Method)
		assert.Equal(t, "api/nsk/v1/users", call.Path)
	})

	t.Run("register too young", func(t *testing.T) {
		spy := newSpy()
		_, err := NewUserService(spy, "v1").Register(ctx, "ada@example.com", "Secret123", "Ada", "Lovelace", "ada@example.com", futureDate(-365*5))
		requireRejected(t, spy, err, "age")
	})

	t.Run("update patches known fields", func(t *testing.T) {
		spy := newSpy()
		fields := map[string]any{"firstName": "Ada", "marketingOptIn": true}
		_, err := NewUserService(spy, "v1").Update(ctx, "user-1", fields)
		require.NoError(t, err)
		call := spy.only(t)
		assert.Equal(t, http.MethodPatch, call.Method)
		assert.Equal(t, "api/nsk/v1/users/user-1", call.Path)
		assert.Equal(t, fields, call.Body)
	})

	t.Run("update with unknown key", func(t *testing.T) {
		spy := newSpy()
		_, err := NewUserService(spy, "v1").Update(ctx, "user-1", map[string]any{"nickname": "ada"})
		requireRejected(t, spy, err, "nickname")
	})

	t.Run("update clearing fields with empty strings", func(t *testing.T) {
		spy := newSpy()
		_, err := NewUserService(spy, "v1").Update(ctx, "user-1", map[string]any{"firstName": "", "email": "", "gender": ""})
		requireRejected(t, spy, err, "")
	})

	t.Run("change password to the same value", func(t *testing.T) {
		spy := newSpy()
		_, err := NewUserService(spy, "v1").ChangePassword(ctx, models.ChangePasswordRequest{CurrentPassword: "Secret123", NewPassword: "Secret123"})
		requireRejected(t, spy, err, "")
	})

	t.Run("session user and preferences", func(t *testing.T) {
		spy := newSpy()
		svc := NewUserService(spy, "v1")
		_, err := svc.GetCurrent(ctx)
		require.NoError(t, err)
		_, err = svc.UpdatePreferences(ctx, models.UserPreferencesRequest{DefaultOrigin: models.Ptr("JFK")})
		require.NoError(t, err)
		_, err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Username: "ada@example.com"})
		require.NoError(t, err)
		_, err = svc.Delete(ctx, "user-1")
		require.NoError(t, err)

		calls := spy.Calls()
		require.Len(t, calls, 4)
		assert.Equal(t, "api/nsk/v1/user", calls[0].Path)
		assert.Equal(t, "api/nsk/v1/user/preferences", calls[1].Path)
		assert.Equal(t, "api/nsk/v1/users/password/reset", calls[2].Path)
		assert.Equal(t, http.MethodDelete, calls[3].Method)
	})
}

func TestPaymentOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("add with stored payment", func(t *testing.T) {
		spy := newSpy()
		_, err := NewPaymentService(spy, "v6").Add(ctx, models.PaymentRequest{
			PaymentMethodCode: "VI",
			Amount:            120.5,
			CurrencyCode:      "USD",
			StoredPaymentKey:  models.Ptr("stored-0001"),
		})
		require.NoError(t, err)
		assert.Equal(t, "api/nsk/v6/booking/payments", spy.only(t).Path)
	})

	t.Run("both payment sources", func(t *testing.T) {
		spy := newSpy()
		_, err := NewPaymentService(spy, "v6").Add(ctx, models.PaymentRequest{
			PaymentMethodCode: "VI",
			Amount:            120.5,
			CurrencyCode:      "USD",
			PaymentFields:     map[string]string{"AccountNumber": "4111111111111111"},
			StoredPaymentKey:  models.Ptr("stored-0001"),
		})
		requireRejected(t, spy, err, "exactly one of paymentFields or storedPaymentKey")
	})

	t.Run("refund and delete", func(t *testing.T) {
		spy := newSpy()
		svc := NewPaymentService(spy, "v6")
		_, err := svc.Refund(ctx, "pay-0001", models.RefundRequest{Amount: 10, CurrencyCode: "USD"})
		require.NoError(t, err)
		_, err = svc.Delete(ctx, "pay-0001")
		require.NoError(t, err)
		_, err = svc.GetAvailableMethods(ctx, models.Ptr("USD"))
		require.NoError(t, err)

		calls := spy.Calls()
		require.Len(t, calls, 3)
		assert.Equal(t, "api/nsk/v6/booking/payments/pay-0001/refund", calls[0].Path)
		assert.Equal(t, "api/nsk/v6/booking/payments/pay-0001", calls[1].Path)
		assert.Equal(t, "USD", calls[2].Query.Get("CurrencyCode"))
	})

	t.Run("negative refund", func(t *testing.T) {
		spy := newSpy()
		_, err := NewPaymentService(spy, "v6").Refund(ctx, "pay-0001", models.RefundRequest{Amount: -1, CurrencyCode: "USD"})
		requireRejected(t, spy, err, "amount")
	})
}
