package geetest

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrMissingParams 缺少验证参数
var ErrMissingParams = errors.New("captcha parameters missing")

// GeetestClient 极验验证客户端
type GeetestClient struct {
	CaptchaID  string
	CaptchaKey string
	APIServer  string
	httpClient *http.Client
}

// NewGeetestClient 创建极验验证客户端
func NewGeetestClient(captchaID, captchaKey, apiServer string) *GeetestClient {
	return &GeetestClient{
		CaptchaID:  captchaID,
		CaptchaKey: captchaKey,
		APIServer:  strings.TrimRight(apiServer, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// VerifyResponse 验证响应
type VerifyResponse struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Msg    string `json:"msg"`
	Result string `json:"result"`
	Reason string `json:"reason"`
}

// VerifyParams 前端完成验证后提交的参数
type VerifyParams struct {
	LotNumber     string `json:"lot_number"`
	CaptchaOutput string `json:"captcha_output"`
	PassToken     string `json:"pass_token"`
	GenTime       string `json:"gen_time"`
}

// Empty 是否未提交任何验证参数
func (p VerifyParams) Empty() bool {
	return p.LotNumber == "" || p.CaptchaOutput == "" || p.PassToken == "" || p.GenTime == ""
}

// Verify 二次校验极验验证结果，通过时返回 nil
func (c *GeetestClient) Verify(ctx context.Context, params VerifyParams) error {
	if params.Empty() {
		return ErrMissingParams
	}

	data := url.Values{}
	data.Set("lot_number", params.LotNumber)
	data.Set("captcha_output", params.CaptchaOutput)
	data.Set("pass_token", params.PassToken)
	data.Set("gen_time", params.GenTime)
	data.Set("sign_token", c.generateSignToken(params.LotNumber))

	apiURL := fmt.Sprintf("%s/validate?captcha_id=%s", c.APIServer, url.QueryEscape(c.CaptchaID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求极验服务失败: %w", err)
	}
	defer resp.Body.Close()

	var verifyResp VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verifyResp); err != nil {
		return fmt.Errorf("解析极验响应失败: %w", err)
	}

	if verifyResp.Status == "error" {
		return errors.New(verifyResp.Msg)
	}
	if verifyResp.Status == "success" && verifyResp.Result == "success" {
		return nil
	}
	return fmt.Errorf("验证未通过: %s", verifyResp.Reason)
}

// generateSignToken 以验证流水号为消息、验证私钥为密钥计算 HMAC-SHA256
func (c *GeetestClient) generateSignToken(lotNumber string) string {
	h := hmac.New(sha256.New, []byte(c.CaptchaKey))
	h.Write([]byte(lotNumber))
	return hex.EncodeToString(h.Sum(nil))
}
