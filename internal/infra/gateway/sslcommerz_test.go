//go:build unit

package gateway_test

import (
	"context"
	"crypto/md5" // #nosec G501
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"tiffintime-api/internal/infra/gateway"
	"tiffintime-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig()
	cfg.Payment.StoreID = "tiffi0001"
	cfg.Payment.StorePass = "tiffi0001@ssl"
	return gateway.NewClientWithBaseURL(cfg, srv.URL)
}

func TestCreateSession(t *testing.T) {
	req := gateway.SessionRequest{
		TranID:      "TT-abc",
		Amount:      136.5,
		Currency:    "BDT",
		Customer:    gateway.Customer{Name: "Rafi", Email: "rafi@campus.edu", Phone: "01712345678"},
		NumOfItems:  2,
		ProductName: "TiffinTime order",
		SuccessURL:  "http://api/payments/success",
	}

	t.Run("success returns the gateway page", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "/gwprocess/v4/api.php", r.URL.Path)
			assert.Equal(t, "tiffi0001", r.PostForm.Get("store_id"))
			assert.Equal(t, "136.50", r.PostForm.Get("total_amount"))
			assert.Equal(t, "TT-abc", r.PostForm.Get("tran_id"))
			assert.Equal(t, "2", r.PostForm.Get("num_of_item"))
			_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionkey":"SK1","GatewayPageURL":"https://pay/SK1"}`))
		})

		session, err := client.CreateSession(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "SK1", session.SessionKey)
		assert.Equal(t, "https://pay/SK1", session.GatewayURL)
	})

	t.Run("failed status is a rejection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"FAILED","failedreason":"Store Credential Error"}`))
		})

		_, err := client.CreateSession(context.Background(), req)
		assert.ErrorIs(t, err, gateway.ErrSessionRejected)
	})

	t.Run("http error is a gateway failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.CreateSession(context.Background(), req)
		assert.ErrorIs(t, err, gateway.ErrGatewayFailure)
	})
}

func TestValidate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validator/api/validationserverAPI.php", r.URL.Path)
		assert.Equal(t, "VAL-1", r.URL.Query().Get("val_id"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{"status":"VALID","tran_id":"TT-abc","amount":"136.50"}`))
	})

	v, err := client.Validate(context.Background(), "VAL-1")
	require.NoError(t, err)
	assert.Equal(t, &gateway.Validation{Status: "VALID", TranID: "TT-abc", Amount: "136.50"}, v)
}

func TestTransactionStatus(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "first element wins", body: `{"APIConnect":"DONE","element":[{"status":"VALID"},{"status":"FAILED"}]}`, want: "VALID"},
		{name: "no records", body: `{"APIConnect":"DONE","element":[]}`, want: ""},
		{name: "api not connected", body: `{"APIConnect":"INVALID_REQUEST"}`, wantErr: gateway.ErrGatewayFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "TT-abc", r.URL.Query().Get("tran_id"))
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := client.TransactionStatus(context.Background(), "TT-abc")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

func TestVerifyIPN(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Payment.StorePass = "tiffi0001@ssl"
	client := gateway.NewClientWithBaseURL(cfg, "http://unused")

	signed := func() url.Values {
		form := url.Values{
			"tran_id":    {"TT-abc"},
			"val_id":     {"VAL-1"},
			"status":     {"VALID"},
			"amount":     {"136.50"},
			"verify_key": {"tran_id,val_id,status,amount"},
		}
		plain := "amount=136.50&status=VALID&store_passwd=" + md5Hex("tiffi0001@ssl") + "&tran_id=TT-abc&val_id=VAL-1"
		form.Set("verify_sign", md5Hex(plain))
		return form
	}

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, client.VerifyIPN(signed()))
	})

	t.Run("tampered field", func(t *testing.T) {
		form := signed()
		form.Set("status", "FAILED")
		assert.False(t, client.VerifyIPN(form))
	})

	t.Run("store_passwd listed in verify_key cannot replace the secret", func(t *testing.T) {
		form := url.Values{
			"tran_id":      {"TT-victim"},
			"status":       {"VALID"},
			"store_passwd": {"attacker"},
			"verify_key":   {"status,store_passwd,tran_id"},
		}
		form.Set("verify_sign", md5Hex("status=VALID&store_passwd=attacker&tran_id=TT-victim"))
		assert.False(t, client.VerifyIPN(form))
	})

	t.Run("store_passwd listed in verify_key still uses the configured secret", func(t *testing.T) {
		form := url.Values{
			"tran_id":    {"TT-abc"},
			"status":     {"VALID"},
			"verify_key": {"status,store_passwd,tran_id"},
		}
		form.Set("verify_sign", md5Hex("status=VALID&store_passwd="+md5Hex("tiffi0001@ssl")+"&tran_id=TT-abc"))
		assert.True(t, client.VerifyIPN(form))
	})

	t.Run("missing signature", func(t *testing.T) {
		form := signed()
		form.Del("verify_sign")
		assert.False(t, client.VerifyIPN(form))
	})
}
