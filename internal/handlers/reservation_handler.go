package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ruzaikr/table-booking/internal/audit"
	"github.com/ruzaikr/table-booking/internal/cache"
	"github.com/ruzaikr/table-booking/internal/config"
	domain "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/dto"
	"github.com/ruzaikr/table-booking/internal/httperr"
	"github.com/ruzaikr/table-booking/internal/httpresp"
	infraRepo "github.com/ruzaikr/table-booking/internal/infra/repository"
	"github.com/ruzaikr/table-booking/internal/timezone"
	usecase "github.com/ruzaikr/table-booking/internal/usecase/reservation"
	"github.com/ruzaikr/table-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	submit       *usecase.SubmitReservation
	availability *usecase.GetAvailability
	listByDate   *usecase.ListReservationsByDate

	cache *cache.AvailabilityCache
	tz    string
}

func NewReservationHandler(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *ReservationHandler {
	repo := infraRepo.NewReservationGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &ReservationHandler{
		submit:       usecase.NewSubmitReservation(repo, cfg.Policy, dispatcher, cfg.Timezone),
		availability: usecase.NewGetAvailability(repo, cfg.Policy, cfg.Timezone),
		listByDate:   usecase.NewListReservationsByDate(repo),
		cache:        cache.New(rdb, cfg.CacheTTL),
		tz:           cfg.Timezone,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Time   string `json:"time" binding:"required"` // HH:mm
	Guests int    `json:"guests" binding:"required,gt=0"`
	Notes  string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation data.")
		return
	}

	// Checagem de domínio só quando a sintaxe já passou; um DNS fora do
	// ar não pode derrubar reservas com e-mail válido.
	if validators.IsEmailFormatValid(req.Email) && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_request", "Email domain does not accept mail.")
		return
	}

	created, err := h.submit.Execute(c.Request.Context(), usecase.SubmitInput{
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		StartTime: req.Time,
		Guests:    req.Guests,
		Notes:     req.Notes,
	})

	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	h.cache.InvalidateDate(c.Request.Context(), req.Date)

	httpresp.Created(c, dto.FromReservation(created))
}

func (h *ReservationHandler) writeSubmitError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "failed_to_create_reservation", "Could not create the reservation.")
		return
	}

	switch code {
	case domain.CodeInvalidRequest:
		httperr.BadRequest(c, code, "Invalid reservation data.")
	case domain.CodeOutOfWindow:
		httperr.UnprocessableEntity(c, code, "Reservations open up to 20 days ahead.")
	case domain.CodeClosedDay:
		httperr.UnprocessableEntity(c, code, "The restaurant is closed on that day.")
	case domain.CodeDuplicateBooking:
		httperr.Conflict(c, code, "You already have a reservation for that date.")
	case domain.CodeNoAvailability:
		httperr.Conflict(c, code, "No table is free for that time.")
	case domain.CodeStorageConflict:
		c.Header("Retry-After", "1")
		httperr.Unavailable(c, code, "Another booking raced ahead; please try again.")
	default:
		httperr.Internal(c, "failed_to_create_reservation", "Could not create the reservation.")
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func parseGuests(q string) (int, error) {
	n, err := strconv.Atoi(q)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func (h *ReservationHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	guests, err := parseGuests(c.Query("guests"))
	if dateStr == "" || err != nil {
		httperr.BadRequest(c, "missing_params", "Date and guest count are required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	if slots, ok := h.cache.Get(c.Request.Context(), dateStr, guests); ok {
		httpresp.List(c, slots)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:   date,
		Guests: guests,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	h.cache.Set(c.Request.Context(), dateStr, guests, slots)

	httpresp.List(c, slots)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not list reservations.")
		return
	}

	httpresp.List(c, out)
}
