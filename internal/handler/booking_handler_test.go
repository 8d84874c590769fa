package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Eenot/shareit/internal/application"
	"github.com/Eenot/shareit/internal/domain"
	bookingDomain "github.com/Eenot/shareit/internal/domain/booking"
	bookingMocks "github.com/Eenot/shareit/internal/domain/booking/mocks"
	itemDomain "github.com/Eenot/shareit/internal/domain/item"
	itemMocks "github.com/Eenot/shareit/internal/domain/item/mocks"
	userDomain "github.com/Eenot/shareit/internal/domain/user"
	userMocks "github.com/Eenot/shareit/internal/domain/user/mocks"
	"github.com/Eenot/shareit/internal/handler"
	"github.com/Eenot/shareit/internal/kafka"
	"github.com/Eenot/shareit/internal/middleware"
)

type nopPublisher struct{}

func (nopPublisher) PublishEvent(context.Context, string, kafka.CloudEvent) error { return nil }

type routerDeps struct {
	router   *gin.Engine
	bookings *bookingMocks.MockBookingRepository
	items    *itemMocks.MockItemRepository
	users    *userMocks.MockUserRepository
}

func setupRouter(t *testing.T) (*gomock.Controller, routerDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBookingRepository(ctrl)
	items := itemMocks.NewMockItemRepository(ctrl)
	users := userMocks.NewMockUserRepository(ctrl)
	service := application.NewBookingService(bookings, items, users, nopPublisher{}, zap.NewNop())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Identity())
	handler.NewBookingHandler(service).RegisterRoutes(&router.RouterGroup)

	return ctrl, routerDeps{router: router, bookings: bookings, items: items, users: users}
}

func perform(router *gin.Engine, method, target, callerID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if callerID != "" {
		req.Header.Set(middleware.HeaderUserID, callerID)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedUser(id uuid.UUID, name string) *userDomain.User {
	now := time.Now().UTC()
	return userDomain.Reconstruct(id, name, name+"@example.com", now, now)
}

func seedBooking(ownerID, bookerID uuid.UUID, status bookingDomain.Status) *bookingDomain.Booking {
	now := time.Now().UTC()
	return bookingDomain.Reconstruct(
		uuid.New(),
		bookingDomain.ItemRef{ID: uuid.New(), Name: "drill", OwnerID: ownerID, Available: true},
		bookingDomain.UserRef{ID: bookerID, Name: "alice"},
		now.Add(time.Hour), now.Add(2*time.Hour),
		status, now, now,
	)
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		bookerID := uuid.New()
		itemID := uuid.New()
		now := time.Now().UTC()

		deps.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(seedUser(bookerID, "alice"), nil)
		deps.items.EXPECT().FindByID(gomock.Any(), itemID).
			Return(itemDomain.Reconstruct(itemID, uuid.New(), "drill", "cordless drill", true, now, now), nil)
		deps.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		w := perform(deps.router, http.MethodPost, "/bookings", bookerID.String(), gin.H{
			"itemId": itemID,
			"start":  now.Add(time.Hour).Format(time.RFC3339),
			"end":    now.Add(2 * time.Hour).Format(time.RFC3339),
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var dto application.BookingDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, "WAITING", dto.Status)
		assert.Equal(t, itemID, dto.Item.ID)
	})

	t.Run("400 without identity header", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		w := perform(deps.router, http.MethodPost, "/bookings", "", gin.H{
			"itemId": uuid.New(),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApproveBookingEndpoint(t *testing.T) {
	t.Run("200 approves waiting booking", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		ownerID := uuid.New()
		bk := seedBooking(ownerID, uuid.New(), bookingDomain.StatusWaiting)

		deps.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(seedUser(ownerID, "bob"), nil)
		deps.bookings.EXPECT().FindByID(gomock.Any(), bk.ID()).Return(bk, nil)
		deps.bookings.EXPECT().UpdateStatus(gomock.Any(), bk.ID(), bookingDomain.StatusWaiting, bookingDomain.StatusApproved).Return(nil)

		w := perform(deps.router, http.MethodPatch,
			"/bookings/"+bk.ID().String()+"?approved=true", ownerID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var dto application.BookingDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, "APPROVED", dto.Status)
	})

	t.Run("403 for non-owner", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		bookerID := uuid.New()
		bk := seedBooking(uuid.New(), bookerID, bookingDomain.StatusWaiting)

		deps.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(seedUser(bookerID, "alice"), nil)
		deps.bookings.EXPECT().FindByID(gomock.Any(), bk.ID()).Return(bk, nil)

		w := perform(deps.router, http.MethodPatch,
			"/bookings/"+bk.ID().String()+"?approved=true", bookerID.String(), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("400 for invalid decision", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		w := perform(deps.router, http.MethodPatch,
			"/bookings/"+uuid.NewString()+"?approved=maybe", uuid.NewString(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("400 for malformed booking id", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		w := perform(deps.router, http.MethodPatch,
			"/bookings/not-a-uuid?approved=true", uuid.NewString(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookingEndpoint(t *testing.T) {
	t.Run("404 for unknown booking", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		userID := uuid.New()
		bookingID := uuid.New()

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(seedUser(userID, "alice"), nil)
		deps.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, domain.NewNotFoundError("booking", bookingID.String()))

		w := perform(deps.router, http.MethodGet,
			"/bookings/"+bookingID.String(), userID.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBookingsEndpoint(t *testing.T) {
	t.Run("defaults state to ALL and pages to 0/10", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		bookerID := uuid.New()
		deps.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(seedUser(bookerID, "alice"), nil)
		deps.bookings.EXPECT().FindAllByBookerID(gomock.Any(), bookerID, domain.NewPage(0, 10)).Return(nil, nil)

		w := perform(deps.router, http.MethodGet, "/bookings", bookerID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("unknown state echoes the literal", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		bookerID := uuid.New()
		deps.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(seedUser(bookerID, "alice"), nil)

		w := perform(deps.router, http.MethodGet, "/bookings?state=BOGUS", bookerID.String(), nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Unknown state: BOGUS"}`, w.Body.String())
	})

	t.Run("negative from is rejected", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		w := perform(deps.router, http.MethodGet, "/bookings?from=-1", uuid.NewString(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("owner without items gets 400", func(t *testing.T) {
		ctrl, deps := setupRouter(t)
		defer ctrl.Finish()

		ownerID := uuid.New()
		deps.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(seedUser(ownerID, "bob"), nil)
		deps.items.EXPECT().IDsByOwner(gomock.Any(), ownerID).Return(nil, nil)

		w := perform(deps.router, http.MethodGet, "/bookings/owner", ownerID.String(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelBookingEndpoint(t *testing.T) {
	ctrl, deps := setupRouter(t)
	defer ctrl.Finish()

	bookerID := uuid.New()
	bk := seedBooking(uuid.New(), bookerID, bookingDomain.StatusWaiting)

	deps.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(seedUser(bookerID, "alice"), nil)
	deps.bookings.EXPECT().FindByID(gomock.Any(), bk.ID()).Return(bk, nil)
	deps.bookings.EXPECT().UpdateStatus(gomock.Any(), bk.ID(), bookingDomain.StatusWaiting, bookingDomain.StatusCanceled).Return(nil)

	w := perform(deps.router, http.MethodPost,
		"/bookings/"+bk.ID().String()+"/cancel", bookerID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dto application.BookingDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, "CANCELED", dto.Status)
}
