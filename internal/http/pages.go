package httpapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/ulazimo/kolagen/internal/components"
	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/repository"
	"github.com/ulazimo/kolagen/internal/service"
)

// registerPages HTML-страница, фрагменты и обычные формы (работают без JS)
func (s *Server) registerPages() {
	pages := s.engine.Group("", s.sessionMiddleware())

	pages.GET("/", s.landing)
	pages.GET("/fragments/cart", s.cartFragment)
	pages.GET("/fragments/summary", s.summaryFragment)
	pages.GET("/fragments/quote", s.quoteFragment)

	pages.POST("/cart/add", s.formAddToCart)
	pages.POST("/cart/remove", s.formRemoveFromCart)
	pages.POST("/order/step", s.formOrderStep)
	pages.POST("/order", s.formSubmitOrder)
	pages.POST("/testimonials/jump/:index", s.formJumpSlide)
	pages.POST("/newsletter", s.formSubscribe)
}

func (s *Server) landing(c *gin.Context) {
	sess := currentSession(c)
	if c.Query("success") == "true" {
		s.svc.Sessions.OrderSucceeded(c, sess)
	}
	products, err := s.svc.Products.List(c, repository.ProductFilter{})
	if err != nil {
		writeError(c, err)
		return
	}
	sel := quoteSelection(c, products)
	// неверный выбор просто даёт пустой расчёт, страница всё равно рисуется
	quote, _ := s.svc.Orders.Quote(c, sel.ProductID, sel.Quantity)
	renderHTML(c, http.StatusOK, components.LandingPage(components.LandingData{
		Products:   products,
		Quote:      sel,
		QuoteSum:   quote,
		Cart:       s.svc.Cart.View(c, sess),
		Form:       s.svc.Cart.Form(c, sess),
		Slides:     s.svc.Sessions.Slides(c, sess),
		Notices:    s.svc.Sessions.Notices(c, sess),
		Subscribed: c.Query("subscribed") == "true",
	}))
}

func (s *Server) cartFragment(c *gin.Context) {
	renderHTML(c, http.StatusOK, components.CartSidebar(s.svc.Cart.View(c, currentSession(c))))
}

func (s *Server) summaryFragment(c *gin.Context) {
	view := s.svc.Cart.Form(c, currentSession(c))
	renderHTML(c, http.StatusOK, components.SummaryRows(view.Summary, view.ShippingLabel))
}

func (s *Server) quoteFragment(c *gin.Context) {
	products, err := s.svc.Products.List(c, repository.ProductFilter{})
	if err != nil {
		writeError(c, err)
		return
	}
	sel := quoteSelection(c, products)

	status := http.StatusOK
	sum, err := s.svc.Orders.Quote(c, sel.ProductID, sel.Quantity)
	if err != nil {
		status = mapErrorToStatus(err)
	}
	renderHTML(c, status, components.QuotePanel(products, sel, sum))
}

// quoteSelection выбор из query; по умолчанию первый товар каталога, 1 шт.
func quoteSelection(c *gin.Context, products []domain.Product) domain.Selection {
	sel := domain.Selection{ProductID: domain.ProductID(c.Query("product")), Quantity: 1}
	if sel.ProductID == "" && len(products) > 0 {
		sel.ProductID = products[0].ID
	}
	if v := c.Query("quantity"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			q = 0
		}
		sel.Quantity = q
	}
	return sel
}

func (s *Server) formAddToCart(c *gin.Context) {
	s.svc.Cart.Add(c, currentSession(c), domain.ProductID(c.PostForm("product")))
	c.Redirect(http.StatusSeeOther, "/#proizvodi")
}

func (s *Server) formRemoveFromCart(c *gin.Context) {
	s.svc.Cart.Remove(c, currentSession(c), domain.ProductID(c.PostForm("product")))
	c.Redirect(http.StatusSeeOther, "/#korpa")
}

func (s *Server) formOrderStep(c *gin.Context) {
	delta, _ := strconv.Atoi(c.PostForm("delta"))
	if _, err := s.svc.Cart.FormStep(c, currentSession(c), domain.ProductID(c.PostForm("product")), delta); err != nil {
		s.log.Debug("order step rejected", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/#porudzbina")
}

// formSubmitOrder при успехе отдаёт страницу подтверждения со скрытой формой
// для внешнего сервиса, при ошибке возвращает к форме (сообщение уже в сессии)
func (s *Server) formSubmitOrder(c *gin.Context) {
	var req service.OrderRequest
	back := "/#porudzbina"
	if p := c.PostForm("product"); p != "" {
		req.Product = domain.ProductID(p)
		req.Quantity, _ = strconv.Atoi(c.PostForm("quantity"))
		back = "/?" + url.Values{"product": {p}, "quantity": {c.PostForm("quantity")}}.Encode() + "#quote"
	}
	if err := c.ShouldBind(&req.Customer); err != nil {
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	sub, err := s.svc.Orders.Prepare(c, currentSession(c), req)
	if err != nil {
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	renderHTML(c, http.StatusOK, components.HandoffPage(sub))
}

func (s *Server) formJumpSlide(c *gin.Context) {
	if idx, err := strconv.Atoi(c.Param("index")); err == nil {
		s.svc.Sessions.JumpToSlide(c, currentSession(c), idx)
	}
	c.Redirect(http.StatusSeeOther, "/#utisci")
}

func (s *Server) formSubscribe(c *gin.Context) {
	if _, err := s.svc.Newsletter.Subscribe(c, c.PostForm("email")); err != nil {
		s.log.Info("newsletter signup rejected", zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/#newsletter")
		return
	}
	c.Redirect(http.StatusSeeOther, "/?subscribed=true#newsletter")
}

func renderHTML(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
