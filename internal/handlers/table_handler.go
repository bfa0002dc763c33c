package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruzaikr/table-booking/internal/httperr"
	"github.com/ruzaikr/table-booking/internal/httpresp"
	infraRepo "github.com/ruzaikr/table-booking/internal/infra/repository"
)

type TableHandler struct {
	repo *infraRepo.ReservationGormRepository
}

func NewTableHandler(db *gorm.DB) *TableHandler {
	return &TableHandler{repo: infraRepo.NewReservationGormRepository(db)}
}

// List expõe o inventário de mesas, em ordem de capacidade. Somente
// leitura; a gestão do inventário fica num processo administrativo
// fora deste serviço.
func (h *TableHandler) List(c *gin.Context) {
	minCapacity := 1
	if q := c.Query("min_capacity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			httperr.BadRequest(c, "invalid_min_capacity", "Invalid minimum capacity.")
			return
		}
		minCapacity = n
	}

	tables, err := h.repo.FindTables(c.Request.Context(), minCapacity)
	if err != nil {
		httperr.Internal(c, "failed_to_list_tables", "Could not list tables.")
		return
	}

	httpresp.List(c, tables)
}
