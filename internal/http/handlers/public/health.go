package public

import (
	"net/http"

	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/models"

	"github.com/gin-gonic/gin"
)

// DBStatus 数据库连通性
type DBStatus struct {
	Connected bool   `json:"connected"`
	Database  string `json:"database"`
	Status    string `json:"status"`
}

// GetDBStatus 数据库连通性探针，不可用时返回 503
func (h *Handler) GetDBStatus(c *gin.Context) {
	status := DBStatus{Status: "Unhealthy"}
	if h.DB != nil {
		status.Database = h.DB.Dialector.Name()
		if err := models.Ping(h.DB); err == nil {
			status.Connected = true
			status.Status = "Healthy"
		} else {
			handlershared.RequestLog(c).Warnw("db_status_ping_failed", "error", err)
		}
	}
	if !status.Connected {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			StatusCode: response.CodeUnavailable,
			Msg:        "database unavailable",
			Data:       status,
		})
		return
	}
	response.Success(c, status)
}
