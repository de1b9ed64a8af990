package v1

import (
	"net/http"

	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialUC domain.TestimonialUsecase
}

func NewTestimonialHandler(public *gin.RouterGroup, testimonialUC domain.TestimonialUsecase) {
	handler := &TestimonialHandler{testimonialUC: testimonialUC}

	testimonials := public.Group("/testimonials")
	{
		testimonials.GET("", handler.List)
		testimonials.POST("", handler.Create)
	}
}

// List returns testimonials with optional sort/filter/pagination query
// params. Out-of-range values are clamped, not rejected.
func (h *TestimonialHandler) List(c *gin.Context) {
	var params domain.TestimonialListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return
	}

	items, total, err := h.testimonialUC.List(c.Request.Context(), &params)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Testimonials retrieved", gin.H{
		"items":     items,
		"total":     total,
		"sort":      params.Sort,
		"order":     params.Order,
		"minRating": params.MinRating,
		"page":      params.Page,
		"pageSize":  params.PageSize,
	})
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var input domain.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	created, err := h.testimonialUC.Create(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Testimonial created", gin.H{"item": created})
}
