package handler

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/easyrokra/gateway/internal/order"
	"github.com/go-chi/chi/v5"
)

// StatusChecker defines the lightweight status lookup used by the
// confirmation page. Satisfied by *service.OrderService.
type StatusChecker interface {
	Status(ctx context.Context, orderNo string) (order.StatusClass, error)
}

// PageHandler serves the browser-facing page routes. The pages are thin
// shells; their job is the routing decisions, not presentation.
type PageHandler struct {
	svc     OrderHydrator
	checker StatusChecker
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(svc OrderHydrator, checker StatusChecker) *PageHandler {
	return &PageHandler{svc: svc, checker: checker}
}

// RegisterRoutes registers page routes on the given Chi router.
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Landing)
	r.Get("/payment", h.Payment)
	r.Get("/confirmation", h.Confirmation)
}

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><title>EasyRokra</title></head>
<body>
<h1>EasyRokra</h1>
<form action="/payment" method="get">
<label>Order number <input name="orderid" required></label>
<button type="submit">Pay</button>
</form>
</body>
</html>
`))

var paymentTmpl = template.Must(template.New("payment").Parse(`<!DOCTYPE html>
<html>
<head><title>Pay order {{.OrderNo}}</title></head>
<body>
<h1>Order {{.OrderNo}}</h1>
<p>Customer: {{.CustomerName}} ({{.CustomerEmail}})</p>
<p>Deliver to: {{.DeliveryAddress}}</p>
<ul>
{{range .Items}}<li>{{.Name}} x{{.Quantity}} ({{.Weight}}) PKR {{.Price}}</li>
{{end}}</ul>
<p>Total: PKR {{.Total}}</p>
<form action="/update-order-status" method="post">
<input type="hidden" name="orderID" value="{{.OrderNo}}">
<button type="submit">Confirm payment</button>
</form>
</body>
</html>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head><title>Payment confirmed</title></head>
<body>
<h1>Payment confirmed</h1>
<p>Order {{.OrderNo}} is paid. A confirmation email is on its way.</p>
</body>
</html>
`))

type paymentPageItem struct {
	Name     string
	Quantity int
	Weight   string
	Price    string
}

type paymentPageData struct {
	OrderNo         string
	CustomerName    string
	CustomerEmail   string
	DeliveryAddress string
	Items           []paymentPageItem
	Total           string
}

// Landing handles GET /.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, landingTmpl, nil)
}

// Payment handles GET /payment?orderid=<id>. A paid order goes straight to
// the confirmation page; an unknown order goes back to the landing page.
func (h *PageHandler) Payment(w http.ResponseWriter, r *http.Request) {
	orderNo := r.URL.Query().Get("orderid")
	if orderNo == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	hydrated, err := h.svc.Hydrate(r.Context(), orderNo)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("ERROR: payment page for order %s: %v", orderNo, err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}

	if hydrated.Class() == order.Terminal {
		http.Redirect(w, r, confirmationURL(orderNo), http.StatusSeeOther)
		return
	}

	data := paymentPageData{
		OrderNo:         hydrated.Header.OrderNo,
		CustomerName:    hydrated.Header.CustomerName,
		CustomerEmail:   hydrated.Header.CustomerEmail,
		DeliveryAddress: hydrated.Header.DeliveryAddress,
		Total:           hydrated.Total.StringFixed(2),
		Items:           make([]paymentPageItem, len(hydrated.Items)),
	}
	for i, item := range hydrated.Items {
		data.Items[i] = paymentPageItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Weight:   item.Weight,
			Price:    item.UnitPrice.StringFixed(2),
		}
	}
	renderHTML(w, paymentTmpl, data)
}

// Confirmation handles GET /confirmation?orderid=<id>. Only the status
// classifier runs here; an order that is not actually paid is sent back to
// the payment page.
func (h *PageHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	orderNo := r.URL.Query().Get("orderid")
	if orderNo == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	class, err := h.checker.Status(r.Context(), orderNo)
	if err != nil && !errors.Is(err, order.ErrNotFound) {
		log.Printf("ERROR: confirmation page for order %s: %v", orderNo, err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}

	switch class {
	case order.Terminal:
		renderHTML(w, confirmationTmpl, struct{ OrderNo string }{orderNo})
	case order.Unpaid:
		http.Redirect(w, r, "/payment?orderid="+url.QueryEscape(orderNo), http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func confirmationURL(orderNo string) string {
	return "/confirmation?orderid=" + url.QueryEscape(orderNo) + "&status=success"
}

func renderHTML(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("ERROR: failed to render page: %v", err)
	}
}
