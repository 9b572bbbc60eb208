package cafe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafeapi/internal/pkg/response"
)

// Handler serves the cafe HTTP API
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cafe endpoints. deleteGuard runs before the delete handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, deleteGuard gin.HandlerFunc) {
	rg.GET("/random", h.Random)
	rg.GET("/all_cafe", h.ListAll)
	rg.GET("/search", h.Search)
	rg.POST("/add", h.Create)
	rg.PATCH("/update-price/:id", h.UpdatePrice)
	rg.GET("/update-price/:id", h.UpdatePrice)
	rg.DELETE("/report-closed/:id", deleteGuard, h.Delete)
}

// Random returns one cafe picked at random.
func (h *Handler) Random(c *gin.Context) {
	cafe, err := h.service.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoCafes) {
			response.Error(c, http.StatusNotFound, response.KindNotFound, msgNoCafes)
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafe})
}

func (h *Handler) ListAll(c *gin.Context) {
	cafes, err := h.service.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafes})
}

// Search filters by ?loc=. Misses are reported with status 200 under the "Error" key.
func (h *Handler) Search(c *gin.Context) {
	loc, ok := c.GetQuery("loc")
	if !ok {
		response.Nested(c, http.StatusOK, response.KeySearchError, "No field", msgNoLocField)
		return
	}

	cafes, err := h.service.Search(c.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, ErrCafeNotFound) {
			response.Nested(c, http.StatusOK, response.KeySearchError, "Not found", msgNoCafeAtLoc)
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

func (h *Handler) Create(c *gin.Context) {
	req := CreateCafeRequest{
		Name:        postForm(c, FieldName),
		MapURL:      postForm(c, FieldMapURL),
		ImgURL:      postForm(c, FieldImgURL),
		Location:    postForm(c, FieldLocation),
		Seats:       postForm(c, FieldSeats),
		CoffeePrice: postForm(c, FieldCoffeePrice),
		Sockets:     postForm(c, FieldSockets),
		Toilet:      postForm(c, FieldToilet),
		Wifi:        postForm(c, FieldWifi),
		Calls:       postForm(c, FieldCalls),
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateCafe):
			response.Error(c, http.StatusConflict, response.KindConflict, msgDuplicateCafe)
		case errors.Is(err, ErrMissingField):
			response.Error(c, http.StatusBadRequest, response.KindBadRequest, msgMissingField)
		case errors.Is(err, ErrInvalidBoolean):
			response.Error(c, http.StatusBadRequest, response.KindBadRequest, msgInvalidBoolean)
		default:
			h.internalError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, msgAdded)
}

// UpdatePrice sets coffee_price from ?new_price=. A missing parameter is answered with status 200.
func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	price, ok := c.GetQuery("new_price")
	if !ok {
		response.Error(c, http.StatusOK, response.KindNotFound, msgCafeNotFound)
		return
	}

	if err := h.service.UpdatePrice(c.Request.Context(), id, price); err != nil {
		if errors.Is(err, ErrCafeNotFound) {
			response.Error(c, http.StatusNotFound, response.KindNotFound, msgCafeNotFound)
			return
		}
		h.internalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgPriceUpdated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCafeNotFound) {
			response.Error(c, http.StatusNotFound, response.KindNotFound, msgCafeNotFound)
			return
		}
		h.internalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgDeleted)
}

func (h *Handler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, response.KindInternal, msgInternal)
}

// parseID reads the :id path segment. Non-integer ids are answered with 404,
// the same as a route that does not exist.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.KindNotFound, msgCafeNotFound)
		return 0, false
	}
	return id, true
}

func postForm(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
