package healthz

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorledger/backend/internal/httperror"
	"github.com/vendorledger/backend/internal/httputil"
)

// Pinger reports whether the upstream API is reachable. It is
// implemented by upstream.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(r *gin.RouterGroup, upstream Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(upstream))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health. The service is healthy when the upstream API is reachable.
// @Tags			General
// @Success		204
// @Failure		502	{object}	httperror.Error
// @Router			/healthz [get]
func Get(upstream Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := upstream.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, httperror.New(err))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
