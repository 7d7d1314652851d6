package gateway

import (
	"context"
	"crypto/md5" // #nosec G501 -- the gateway's IPN signature is defined over MD5
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/errs"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	sessionPath     = "/gwprocess/v4/api.php"
	validationPath  = "/validator/api/validationserverAPI.php"
	transactionPath = "/validator/api/merchantTransIDvalidationAPI.php"
)

var (
	ErrSessionRejected = errs.Class("payment gateway rejected the session", errs.ErrUpstream)
	ErrGatewayFailure  = errs.Class("payment gateway request failed", errs.ErrUpstream)
)

type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type SessionRequest struct {
	TranID      string
	Amount      float64
	Currency    string
	Customer    Customer
	NumOfItems  int
	ProductName string
	SuccessURL  string
	FailURL     string
	CancelURL   string
	IPNURL      string
}

type Session struct {
	SessionKey string
	GatewayURL string
}

type Validation struct {
	Status string
	TranID string
	Amount string
}

// Client speaks the SSLCommerz v4 HTTP API.
type Client struct {
	http      *http.Client
	baseURL   string
	storeID   string
	storePass string
}

func NewClient(cfg config.Config) *Client {
	base := liveBaseURL
	if cfg.Payment.Sandbox {
		base = sandboxBaseURL
	}
	return NewClientWithBaseURL(cfg, base)
}

func NewClientWithBaseURL(cfg config.Config, baseURL string) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Payment.Timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		storeID:   cfg.Payment.StoreID,
		storePass: cfg.Payment.StorePass,
	}
}

func (c *Client) CreateSession(ctx context.Context, in SessionRequest) (*Session, error) {
	form := url.Values{
		"store_id":         {c.storeID},
		"store_passwd":     {c.storePass},
		"total_amount":     {strconv.FormatFloat(in.Amount, 'f', 2, 64)},
		"currency":         {in.Currency},
		"tran_id":          {in.TranID},
		"success_url":      {in.SuccessURL},
		"fail_url":         {in.FailURL},
		"cancel_url":       {in.CancelURL},
		"ipn_url":          {in.IPNURL},
		"emi_option":       {"0"},
		"cus_name":         {in.Customer.Name},
		"cus_email":        {in.Customer.Email},
		"cus_phone":        {in.Customer.Phone},
		"cus_add1":         {in.Customer.Address},
		"cus_country":      {"Bangladesh"},
		"shipping_method":  {"NO"},
		"num_of_item":      {strconv.Itoa(in.NumOfItems)},
		"product_name":     {in.ProductName},
		"product_category": {"food"},
		"product_profile":  {"general"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build session request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body struct {
		Status         string `json:"status"`
		FailedReason   string `json:"failedreason"`
		SessionKey     string `json:"sessionkey"`
		GatewayPageURL string `json:"GatewayPageURL"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	if body.Status != "SUCCESS" || body.GatewayPageURL == "" {
		return nil, errs.Mark(errs.Newf("session status %q: %s", body.Status, body.FailedReason), ErrSessionRejected)
	}
	return &Session{SessionKey: body.SessionKey, GatewayURL: body.GatewayPageURL}, nil
}

// Validate confirms a val_id posted back by the gateway.
func (c *Client) Validate(ctx context.Context, valID string) (*Validation, error) {
	q := c.credentials()
	q.Set("val_id", valID)

	var body struct {
		Status string `json:"status"`
		TranID string `json:"tran_id"`
		Amount string `json:"amount"`
	}
	if err := c.get(ctx, validationPath, q, &body); err != nil {
		return nil, err
	}
	return &Validation{Status: body.Status, TranID: body.TranID, Amount: body.Amount}, nil
}

// TransactionStatus returns the status of the most recent gateway record for
// tranID, or "" when the gateway has none.
func (c *Client) TransactionStatus(ctx context.Context, tranID string) (string, error) {
	q := c.credentials()
	q.Set("tran_id", tranID)

	var body struct {
		APIConnect string `json:"APIConnect"`
		Element    []struct {
			Status string `json:"status"`
		} `json:"element"`
	}
	if err := c.get(ctx, transactionPath, q, &body); err != nil {
		return "", err
	}
	if body.APIConnect != "DONE" {
		return "", errs.Mark(errs.Newf("transaction query status %q", body.APIConnect), ErrGatewayFailure)
	}
	if len(body.Element) == 0 {
		return "", nil
	}
	return body.Element[0].Status, nil
}

// VerifyIPN checks verify_sign against the fields listed in verify_key plus
// the md5 of the store password.
func (c *Client) VerifyIPN(form url.Values) bool {
	sign := form.Get("verify_sign")
	keyList := form.Get("verify_key")
	if sign == "" || keyList == "" {
		return false
	}

	fields := make(map[string]string)
	for _, k := range strings.Split(keyList, ",") {
		if k == "store_passwd" {
			continue
		}
		fields[k] = form.Get(k)
	}
	passHash := md5.Sum([]byte(c.storePass)) // #nosec G401
	fields["store_passwd"] = hex.EncodeToString(passHash[:])

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	sum := md5.Sum([]byte(b.String())) // #nosec G401
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(sign))) == 1
}

func (c *Client) credentials() url.Values {
	return url.Values{
		"store_id":     {c.storeID},
		"store_passwd": {c.storePass},
		"format":       {"json"},
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(err, ErrGatewayFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.Mark(errs.Newf("gateway responded %d", resp.StatusCode), ErrGatewayFailure)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(err, ErrGatewayFailure)
	}
	return nil
}
