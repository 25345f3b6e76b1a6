package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/logging"
	"github.com/ulazimo/kolagen/internal/repository"
	"github.com/ulazimo/kolagen/internal/service"
	"github.com/ulazimo/kolagen/internal/session"
)

const sessionKey = "session"

// Services зависимости HTTP-слоя
type Services struct {
	Products   *service.ProductService
	Cart       *service.CartService
	Orders     *service.OrderService
	Sessions   *service.SessionService
	Newsletter *service.NewsletterService
}

// Options параметры cookie сессии
type Options struct {
	CookieName   string
	CookieTTL    time.Duration
	SecureCookie bool
}

type Server struct {
	engine *gin.Engine
	svc    Services
	opts   Options
	log    *zap.Logger
}

func NewServer(svc Services, opts Options, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.CookieName == "" {
		opts.CookieName = "kolagen_session"
	}
	r := gin.New()
	r.Use(logging.Gin(log), gin.Recovery())
	s := &Server{engine: r, svc: svc, opts: opts, log: log}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)

		withSession := v1.Group("", s.sessionMiddleware())

		cart := withSession.Group("/cart")
		cart.GET("", s.getCart)
		cart.POST("/items", s.addToCart)
		cart.DELETE("/items/:product", s.removeFromCart)
		cart.POST("/items/:product/step", s.stepCartItem)

		order := withSession.Group("/order")
		order.GET("/form", s.getOrderForm)
		order.POST("/form/step", s.stepOrderForm)
		order.GET("/quote", s.quote)
		order.POST("/prepare", s.prepareOrder)

		slides := withSession.Group("/testimonials")
		slides.GET("", s.getSlides)
		slides.POST("/next", s.nextSlide)
		slides.POST("/prev", s.prevSlide)
		slides.POST("/jump/:index", s.jumpSlide)
		slides.POST("/viewport", s.setViewport)

		notices := withSession.Group("/notifications")
		notices.GET("", s.listNotices)
		notices.DELETE(":id", s.dismissNotice)

		withSession.POST("/newsletter", s.subscribe)
	}

	s.registerPages()
}

// sessionMiddleware находит сессию по cookie или заводит новую
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(s.opts.CookieName)
		sess, created, err := s.svc.Cart.Resolve(c, id)
		if err != nil {
			s.log.Error("resolve session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "message": service.MsgGeneric})
			return
		}
		// срок cookie продлевается вместе с TTL сессии на сервере
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(s.opts.CookieName, sess.ID, int(s.opts.CookieTTL/time.Second), "/", "", s.opts.SecureCookie, true)
		if created {
			s.log.Debug("session created", zap.String("session_id", sess.ID))
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// Product handlers

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Name contains"
// @Param min_price query int false "Min price, RSD"
// @Param max_price query int false "Max price, RSD"
// @Success 200 {array} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	var f repository.ProductFilter
	if q := c.Query("q"); q != "" {
		f.NameSubstring = q
	}
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MaxPrice = &x
		}
	}
	list, err := s.svc.Products.List(c, f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID (pure, marine, beauty)"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.svc.Products.GetByID(c, domain.ProductID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Cart handlers

type addToCartReq struct {
	Product domain.ProductID `json:"product"`
}

type stepReq struct {
	Product domain.ProductID `json:"product"`
	Delta   int              `json:"delta"`
}

type cartResp struct {
	Added bool             `json:"added"`
	Cart  service.CartView `json:"cart"`
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Cart.View(c, currentSession(c)))
}

// @Summary Add product to cart
// @Description Unknown products are ignored (added=false).
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addToCartReq true "Product"
// @Success 200 {object} cartResp
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addToCart(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	view, added := s.svc.Cart.Add(c, currentSession(c), req.Product)
	c.JSON(http.StatusOK, cartResp{Added: added, Cart: view})
}

// @Summary Remove product from cart
// @Tags cart
// @Produce json
// @Param product path string true "Product ID"
// @Success 200 {object} service.CartView
// @Router /cart/items/{product} [delete]
func (s *Server) removeFromCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Cart.Remove(c, currentSession(c), domain.ProductID(c.Param("product"))))
}

// @Summary Step cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Param input body stepReq true "Delta (+1 or -1)"
// @Success 200 {object} service.CartView
// @Failure 400 {object} map[string]string
// @Router /cart/items/{product}/step [post]
func (s *Server) stepCartItem(c *gin.Context) {
	var req stepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	view, err := s.svc.Cart.Step(c, currentSession(c), domain.ProductID(c.Param("product")), req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Order handlers

// @Summary Get order form state
// @Tags order
// @Produce json
// @Success 200 {object} service.FormView
// @Router /order/form [get]
func (s *Server) getOrderForm(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Cart.Form(c, currentSession(c)))
}

// @Summary Step order form quantity
// @Tags order
// @Accept json
// @Produce json
// @Param input body stepReq true "Product and delta"
// @Success 200 {object} service.FormView
// @Failure 400 {object} map[string]string
// @Router /order/form/step [post]
func (s *Server) stepOrderForm(c *gin.Context) {
	var req stepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	view, err := s.svc.Cart.FormStep(c, currentSession(c), req.Product, req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Quote a single product
// @Description 10% off at exactly 3 packs.
// @Tags order
// @Produce json
// @Param product query string true "Product ID"
// @Param quantity query int true "Quantity 1..99"
// @Success 200 {object} domain.PriceSummary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order/quote [get]
func (s *Server) quote(c *gin.Context) {
	qty, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		writeError(c, service.ErrInvalidInput)
		return
	}
	sum, err := s.svc.Orders.Quote(c, domain.ProductID(c.Query("product")), qty)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary Prepare order for the form service
// @Description Validates the form and returns the fields to post to the external form endpoint.
// @Tags order
// @Accept json
// @Produce json
// @Param input body service.OrderRequest true "Order"
// @Success 200 {object} service.Submission
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /order/prepare [post]
func (s *Server) prepareOrder(c *gin.Context) {
	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sub, err := s.svc.Orders.Prepare(c, currentSession(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Testimonials handlers

type viewportReq struct {
	Width int `json:"width"`
}

// @Summary Testimonials slider state
// @Tags testimonials
// @Produce json
// @Success 200 {object} service.SlideView
// @Router /testimonials [get]
func (s *Server) getSlides(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Sessions.Slides(c, currentSession(c)))
}

// @Summary Next slide
// @Tags testimonials
// @Produce json
// @Success 200 {object} service.SlideView
// @Router /testimonials/next [post]
func (s *Server) nextSlide(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Sessions.NextSlide(c, currentSession(c)))
}

// @Summary Previous slide
// @Tags testimonials
// @Produce json
// @Success 200 {object} service.SlideView
// @Router /testimonials/prev [post]
func (s *Server) prevSlide(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Sessions.PrevSlide(c, currentSession(c)))
}

// @Summary Jump to slide
// @Tags testimonials
// @Produce json
// @Param index path int true "Slide index"
// @Success 200 {object} service.SlideView
// @Failure 400 {object} map[string]string
// @Router /testimonials/jump/{index} [post]
func (s *Server) jumpSlide(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	c.JSON(http.StatusOK, s.svc.Sessions.JumpToSlide(c, currentSession(c), idx))
}

// @Summary Report viewport width
// @Description Applied after a short debounce; the response shows the state before it.
// @Tags testimonials
// @Accept json
// @Produce json
// @Param input body viewportReq true "Viewport"
// @Success 202 {object} service.SlideView
// @Failure 400 {object} map[string]string
// @Router /testimonials/viewport [post]
func (s *Server) setViewport(c *gin.Context) {
	var req viewportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := s.svc.Sessions.SetViewport(c, currentSession(c), req.Width)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, v)
}

// Notification handlers

// @Summary Active notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notice
// @Router /notifications [get]
func (s *Server) listNotices(c *gin.Context) {
	list := s.svc.Sessions.Notices(c, currentSession(c))
	if list == nil {
		list = []domain.Notice{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Dismiss notification
// @Tags notifications
// @Param id path int true "Notice ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [delete]
func (s *Server) dismissNotice(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if !s.svc.Sessions.Dismiss(c, currentSession(c), id) {
		writeError(c, repository.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// Newsletter handlers

type subscribeReq struct {
	Email string `json:"email"`
}

// @Summary Subscribe to newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param input body subscribeReq true "Email"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /newsletter [post]
func (s *Server) subscribe(c *gin.Context) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sub, err := s.svc.Newsletter.Subscribe(c, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"email": sub.Email, "label": service.SubscribedLabel})
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func writeError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "message": service.UserMessage(err)})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNoProducts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
