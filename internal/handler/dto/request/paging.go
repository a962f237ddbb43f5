package request

import (
	"strconv"

	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	DefaultState = "ALL"
	DefaultFrom  = 0
	DefaultSize  = 10
)

var ErrInvalidPaging = errs.InvalidInput("from and size must be integers")

type ListBookingsQuery struct {
	State string
	From  int
	Size  int
}

// ParseListBookingsQuery reads state/from/size; range checks belong to the use case.
func ParseListBookingsQuery(c *gin.Context) (ListBookingsQuery, error) {
	q := ListBookingsQuery{
		State: c.DefaultQuery("state", DefaultState),
		From:  DefaultFrom,
		Size:  DefaultSize,
	}

	var err error
	if raw, ok := c.GetQuery("from"); ok {
		if q.From, err = strconv.Atoi(raw); err != nil {
			return q, errs.Wrapf(ErrInvalidPaging, "from %q", raw)
		}
	}
	if raw, ok := c.GetQuery("size"); ok {
		if q.Size, err = strconv.Atoi(raw); err != nil {
			return q, errs.Wrapf(ErrInvalidPaging, "size %q", raw)
		}
	}
	return q, nil
}
