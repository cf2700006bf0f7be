package geetest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validParams = VerifyParams{LotNumber: "lot-1", CaptchaOutput: "out", PassToken: "pass", GenTime: "1700000000"}

func TestVerify(t *testing.T) {
	client := NewGeetestClient("cid", "secret", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cid", r.URL.Query().Get("captcha_id"))
		assert.Equal(t, client.generateSignToken(r.PostForm.Get("lot_number")), r.PostForm.Get("sign_token"))

		if r.PostForm.Get("pass_token") == "pass" {
			w.Write([]byte(`{"status":"success","result":"success"}`))
			return
		}
		w.Write([]byte(`{"status":"success","result":"fail","reason":"pass_token expired"}`))
	}))
	defer srv.Close()
	client.APIServer = srv.URL

	assert.NoError(t, client.Verify(context.Background(), validParams))

	bad := validParams
	bad.PassToken = "stale"
	err := client.Verify(context.Background(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pass_token expired")
}

func TestVerify_MissingParams(t *testing.T) {
	client := NewGeetestClient("cid", "secret", "http://127.0.0.1:0")
	assert.ErrorIs(t, client.Verify(context.Background(), VerifyParams{LotNumber: "x"}), ErrMissingParams)
}

func TestVerify_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","msg":"illegal captcha_id"}`))
	}))
	defer srv.Close()

	client := NewGeetestClient("cid", "secret", srv.URL)
	err := client.Verify(context.Background(), validParams)
	require.Error(t, err)
	assert.Equal(t, "illegal captcha_id", err.Error())
}
