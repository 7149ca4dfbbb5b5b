package dto

import (
	"net/http"
	"strconv"

	"canteen/shared/constant"
)

type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty"`
	Limit int `json:"limit" validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request, falling back to the
// default page and limit when `defaultRequest` is true.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Offset converts page/limit into a document skip count.
func (q *QueryParams) Offset() int64 {
	if q.Page <= 1 {
		return 0
	}

	return int64((q.Page - 1) * q.Limit)
}
