package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"tiffintime-api/internal/domain/order"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/errs"
	"tiffintime-api/internal/usecase/shared"
)

const deliverySubject = "Your Order is Ready!"

var ErrSendFailed = errs.Class("email provider rejected the message", errs.ErrUpstream)

var deliveryTemplate = template.Must(template.New("delivery").Parse(`<div style="font-family: sans-serif; max-width: 480px;">
  <h2>Hi {{.Name}},</h2>
  <p>Your order <strong>#{{.OrderRef}}</strong> is ready for pickup.</p>
  <table>
    <tr><td>Item</td><td>{{.ItemName}}</td></tr>
    <tr><td>Vendor</td><td>{{.VendorName}}</td></tr>
    <tr><td>Pickup</td><td>{{.Pickup}}</td></tr>
    <tr><td>Total</td><td>৳{{printf "%.2f" .Total}}</td></tr>
  </table>
  <p>Thanks for ordering with TiffinTime.</p>
</div>`))

type deliveryData struct {
	Name       string
	OrderRef   string
	ItemName   string
	VendorName string
	Pickup     string
	Total      float64
}

// Client posts messages to a Resend-compatible /emails endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	from    string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Mail.Timeout},
		baseURL: strings.TrimRight(cfg.Mail.BaseURL, "/"),
		apiKey:  cfg.Mail.APIKey,
		from:    cfg.Mail.From,
	}
}

func (c *Client) SendDeliveryNotice(ctx context.Context, n shared.OrderNoticeSnapshot) error {
	html, err := RenderDeliveryNotice(n)
	if err != nil {
		return err
	}
	return c.send(ctx, n.UserEmail, deliverySubject, html)
}

func RenderDeliveryNotice(n shared.OrderNoticeSnapshot) (string, error) {
	var buf bytes.Buffer
	err := deliveryTemplate.Execute(&buf, deliveryData{
		Name:       n.UserName,
		OrderRef:   order.ShortCode(n.OrderID),
		ItemName:   n.ItemName,
		VendorName: n.VendorName,
		Pickup:     n.Pickup,
		Total:      n.TotalPrice,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to render delivery notice")
	}
	return buf.String(), nil
}

func (c *Client) send(ctx context.Context, to, subject, html string) error {
	payload, err := json.Marshal(map[string]any{
		"from":    c.from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode email")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(err, ErrSendFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.Mark(errs.Newf("email provider responded %d", resp.StatusCode), ErrSendFailed)
	}
	return nil
}
